// Package model defines domain models for shielded pool provenance analysis.
package model

type Pool string
type Network string

var (
	Firn Pool = "firn"
)

var (
	Mainnet Network = "mainnet"
	Sepolia Network = "sepolia"
)
