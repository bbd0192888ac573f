package registry

import "github.com/goodnatureofminers/tokenicon-backend/internal/model"

const (
	wormholeUSDC  = "0x5d4b302506645c37ff133b98c4b50a5ae14841659738d6d733d59d0d217a93bf::coin::COIN"
	wormholeUSDT  = "0xc060006111016b8a020ad5b33834984a437aaa7d3c74c18e09a95d48aceab08c::coin::COIN"
	wormholeWETH  = "0xaf8cd5edc19c4512f4259f0bee101a40d41ebed738ade5874359610ef8eeced5::coin::COIN"
	wormholeWBTC  = "0x027792d9fed7f9844eb4839566001bb6f6cb4804f66aa2da6fe1ee242d896881::coin::COIN"
	wormholeWBNB  = "0xb848cce11ef3a8f62eccea6eb5b35a12c4c2b1ee1af7755d02d7bd6218e8226f::coin::COIN"
	wormholeSOL   = "0xb7844e289a8410e50fb3ca48d69eb9cf29e27d223ef90353fe1bd8e27ff8f3f8::coin::COIN"
	wormholeAVAX  = "0x1e8b532cca6569cab9f9b9ebc73f8c13885012ade714729aa3b450e0339ac766::coin::COIN"
	wormholeMATIC = "0xdbe380b13a6d0f5cdedd58de8f04625263f113b3f9db32b3e1983f49e2841676::coin::COIN"
	wormholeFTM   = "0x6081300950a4f1e2081580e919c210436a1bed49080502834950d31ee55a2396::coin::COIN"
	wormholeARB   = "0xe4239cd951f6c53d9c41e25270d80d31f925ad1655e5ba5b543843d4a66975ee::coin::COIN"

	suiBridgeETH  = "0xd0e89b2af5e4910726fbcd8b8dd37bb79b29e5f83f7491bca830e94f7f226d29::eth::ETH"
	suiBridgeBTC  = "0xaafb102dd0902f5055cadecd687fb5b71ca82ef0e0285d90afde828ec58ca96b::btc::BTC"
	suiBridgeUSDT = "0x375f70cf2ae4c00bf37117d0c85a2c71545e6ee05c4a5c7d282cd66a4504b068::usdt::USDT"
)

var wormholeTokens = map[model.Network][]model.OriginEntry{
	model.Mainnet: {
		{Type: wormholeUSDC, Chain: model.ETH},
		{Type: wormholeUSDT, Chain: model.ETH},
		{Type: wormholeWETH, Chain: model.ETH},
		{Type: wormholeWBTC, Chain: model.ETH},
		{Type: wormholeWBNB, Chain: model.BSC},
		{Type: wormholeSOL, Chain: model.SOL},
		{Type: wormholeAVAX, Chain: model.AVAX},
		{Type: wormholeMATIC, Chain: model.MATIC},
		{Type: wormholeFTM, Chain: model.FTM},
		{Type: wormholeARB, Chain: model.ARB},
	},
	model.Testnet: {},
}

var suiBridgeTokens = map[model.Network][]model.OriginEntry{
	model.Mainnet: {
		{Type: suiBridgeETH, Chain: model.ETH},
		{Type: suiBridgeBTC, Chain: model.BTC},
		{Type: suiBridgeUSDT, Chain: model.ETH},
	},
	model.Testnet: {},
}
