package registry

import "github.com/goodnatureofminers/tokenicon-backend/internal/model"

const (
	SUIType   = "0x2::sui::SUI"
	DEEPType  = "0xdeeb7a4662eec9f2f3def03fb937a663dddaa2e215b8078a284d026b7946c270::deep::DEEP"
	USDCType  = "0xdba34672e30cb065b1f93e3ab55318768fd6fef66c15942c9f7cb846e2f900e7::usdc::USDC"
	WALType   = "0x356a26eb9e012a68958082340d4c4116e7f55615cf27affcff209cf0ae544f59::wal::WAL"
	NSType    = "0x5145494a5f5100e645e4b0aa950fa6b68f614e8c59e17bc5ded3495123a79178::ns::NS"
	SCAType   = "0x7016aae72cfc67f2fadf55769c0a7dd54291a583b63051a5ed71081cce836ac6::sca::SCA"
	CETUSType = "0x06864a6f921804860930db6ddbe2e16acdf8504495ea7481637a1c8b9a8fe54b::cetus::CETUS"
)

var bundledIcons = map[model.Network]map[string]model.ImageRef{
	model.Mainnet: {
		SUIType:      {Name: "sui"},
		USDCType:     {Name: "usdc"},
		DEEPType:     {Name: "deep", URL: "/static/tokens/deep.png"},
		WALType:      {Name: "wal", URL: "/static/tokens/wal.png"},
		NSType:       {Name: "ns", URL: "/static/tokens/ns.png"},
		SCAType:      {Name: "sca", URL: "/static/tokens/sca.png"},
		CETUSType:    {Name: "cetus", URL: "/static/tokens/cetus.png"},
		wormholeUSDC: {Name: "usdc-wormhole"},
		wormholeUSDT: {Name: "usdt-wormhole"},
		wormholeWETH: {Name: "eth-wormhole"},
		suiBridgeETH: {Name: "eth-sui-bridge"},
		suiBridgeBTC: {Name: "btc-sui-bridge", URL: "/static/tokens/wbtc.png"},
	},
	model.Testnet: {
		"SUI":  {Name: "sui"},
		"USDC": {Name: "usdc"},
		"DEEP": {Name: "deep", URL: "/static/tokens/deep.png"},
		"ETH":  {Name: "eth"},
		"BTC":  {Name: "btc"},
		"USDT": {Name: "usdt"},
	},
}
