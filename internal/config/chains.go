package config

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// Deployment lists the V4 contract addresses for one chain.
type Deployment struct {
	ChainID         uint64
	UniversalRouter common.Address
	PoolManager     common.Address
	Quoter          common.Address
	WrappedNative   common.Address
}

var deployments = map[uint64]Deployment{
	1: {
		ChainID:         1,
		UniversalRouter: common.HexToAddress("0x66a9893cC07D91D95644AEDD05D03f95e1dBA8Af"),
		PoolManager:     common.HexToAddress("0x000000000004444c5dc75cB358380D2e3dE08A90"),
		Quoter:          common.HexToAddress("0x52F0E24D1c21C8A0cB1e5a5dD6198556BD9E1203"),
		WrappedNative:   common.HexToAddress("0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"),
	},
	130: {
		ChainID:         130,
		UniversalRouter: common.HexToAddress("0xEf740bf23aCaE26f6492B10de645D6B98dC8Eaf3"),
		PoolManager:     common.HexToAddress("0x1F98400000000000000000000000000000000004"),
		Quoter:          common.HexToAddress("0x333E3C607B141b18fF6de9f258db6e77fE7491E0"),
		WrappedNative:   common.HexToAddress("0x4200000000000000000000000000000000000006"),
	},
	8453: {
		ChainID:         8453,
		UniversalRouter: common.HexToAddress("0x6fF5693b99212Da76ad316178A184AB56D299b43"),
		PoolManager:     common.HexToAddress("0x498581fF718922c3f8e6A244956aF099B2652b2b"),
		Quoter:          common.HexToAddress("0x0d5e0F971ED27FBfF6c2837bf31316121532048D"),
		WrappedNative:   common.HexToAddress("0x4200000000000000000000000000000000000006"),
	},
	42161: {
		ChainID:         42161,
		UniversalRouter: common.HexToAddress("0xA51afAFe0263b40EdaEf0Df8781eA9aa03E381a3"),
		PoolManager:     common.HexToAddress("0x360E68faCcca8cA495c1B759Fd9EEe466db9FB32"),
		Quoter:          common.HexToAddress("0x3972c00f7ed4885e145823eb7C655375D275A1C5"),
		WrappedNative:   common.HexToAddress("0x82aF49447D8a07e3bd95BD0d56f35241523fBab1"),
	},
	11155111: {
		ChainID:         11155111,
		UniversalRouter: common.HexToAddress("0x3A9D48AB9751398BbFa63ad67599Bb04e4BdF98b"),
		PoolManager:     common.HexToAddress("0xE03A1074c86CFeDd5C142C4F04F1a1536e203543"),
		Quoter:          common.HexToAddress("0x61B3f2011A92d183C7dbaDBdA940a7555Ccf9227"),
		WrappedNative:   common.HexToAddress("0xfFf9976782d46CC05630D1f6eBAb18b2324d6B14"),
	},
}

// DeploymentFor returns the V4 deployment table entry for a chain id.
func DeploymentFor(chainID uint64) (Deployment, error) {
	d, ok := deployments[chainID]
	if !ok {
		return Deployment{}, fmt.Errorf("no known V4 deployment for chain %d", chainID)
	}
	return d, nil
}
