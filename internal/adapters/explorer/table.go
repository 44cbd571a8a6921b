package explorer

// NativeEntry routes a network whose chain the verifier already knows; only the API key is supplied
type NativeEntry struct {
	Network string
	Chain   string
	KeyRef  string
	Aliases []string
}

// CustomEntry registers a chain the verifier does not know with an explicit URL pair
type CustomEntry struct {
	Network    string
	Chain      string
	KeyRef     string
	ChainID    uint64
	APIURL     string
	BrowserURL string
}

// Sourcify defaults
const (
	SourcifyAPIURL     = "https://sourcify.dev/server"
	SourcifyBrowserURL = "https://repo.sourcify.dev"
)

// NativeTable lists networks verified through the verifier's built-in chains
var NativeTable = []NativeEntry{
	{Network: "ethMain", Chain: "mainnet", KeyRef: "ETHERSCAN_API_KEY"},
	{Network: "goerli", Chain: "goerli", KeyRef: "ETHERSCAN_API_KEY"},
	{Network: "sepolia", Chain: "sepolia", KeyRef: "ETHERSCAN_API_KEY"},
	{Network: "bscMain", Chain: "bsc", KeyRef: "BSC_API_KEY"},
	{Network: "bscTestnet", Chain: "bscTestnet", KeyRef: "BSC_API_KEY"},
	{Network: "hecoMain", Chain: "heco", KeyRef: "HECO_API_KEY"},
	{Network: "fantomMain", Chain: "opera", KeyRef: "FANTOM_API_KEY"},
	{Network: "fantomTestnet", Chain: "ftmTestnet", KeyRef: "FANTOM_API_KEY"},
	{Network: "optimismMain", Chain: "optimisticEthereum", KeyRef: "OPTIMISM_API_KEY"},
	{Network: "optimismTestnet", Chain: "optimisticGoerli", KeyRef: "OPTIMISM_API_KEY"},
	{Network: "polygon", Chain: "polygon", KeyRef: "POLYGON_API_KEY"},
	{Network: "arbitrumMain", Chain: "arbitrumOne", KeyRef: "ARBITRUM_API_KEY"},
	{Network: "avalanche", Chain: "avalanche", KeyRef: "AVALANCHE_API_KEY"},
	{Network: "fuji", Chain: "avalancheFujiTestnet", KeyRef: "AVALANCHE_API_KEY"},
	{Network: "moonbeam", Chain: "moonbeam", KeyRef: "MOONBEAM_API_KEY"},
	{Network: "moonriver", Chain: "moonriver", KeyRef: "MOONBEAM_API_KEY"},
	{Network: "moonbaseAlpha", Chain: "moonbaseAlpha", KeyRef: "MOONBEAM_API_KEY"},
	{Network: "harmonyMain", Chain: "harmony", KeyRef: "HARMONY_API_KEY"},
	{Network: "harmonyTestnet", Chain: "harmonyTest", KeyRef: "HARMONY_API_KEY"},
	{Network: "auroraMain", Chain: "aurora", KeyRef: "AURORA_API_KEY"},
	{Network: "auroraTestnet", Chain: "auroraTestnet", KeyRef: "AURORA_API_KEY"},
	{Network: "gnosis", Chain: "gnosis", KeyRef: "GNOSIS_API_KEY", Aliases: []string{"xdai"}},
}

// CustomTable lists networks whose explorer must be registered explicitly.
// ChainID must equal the registry's chain id for Network.
var CustomTable = []CustomEntry{
	{Network: "holesky", Chain: "holesky", KeyRef: "ETHERSCAN_API_KEY", ChainID: 17000,
		APIURL: "https://api-holesky.etherscan.io/api", BrowserURL: "https://holesky.etherscan.io"},
	{Network: "optimismSepolia", Chain: "optimisticSepolia", KeyRef: "OPTIMISM_API_KEY", ChainID: 11155420,
		APIURL: "https://api-sepolia-optimistic.etherscan.io/api", BrowserURL: "https://sepolia-optimism.etherscan.io"},
	{Network: "chiado", Chain: "chiado", KeyRef: "GNOSIS_API_KEY", ChainID: 10200,
		APIURL: "https://gnosis-chiado.blockscout.com/api", BrowserURL: "https://gnosis-chiado.blockscout.com"},
	{Network: "celo", Chain: "celo", KeyRef: "CELO_API_KEY", ChainID: 42220,
		APIURL: "https://api.celoscan.io/api", BrowserURL: "https://celoscan.io"},
	{Network: "alfajores", Chain: "alfajores", KeyRef: "CELO_API_KEY", ChainID: 44787,
		APIURL: "https://api-alfajores.celoscan.io/api", BrowserURL: "https://alfajores.celoscan.io"},
	{Network: "cronosMain", Chain: "cronos", KeyRef: "CRONOS_API_KEY", ChainID: 25,
		APIURL: "https://api.cronoscan.com/api", BrowserURL: "https://cronoscan.com"},
	{Network: "cronosTestnet", Chain: "cronosTestnet", KeyRef: "CRONOS_API_KEY", ChainID: 338,
		APIURL: "https://cronos.org/explorer/testnet3/api", BrowserURL: "https://cronos.org/explorer/testnet3"},
	{Network: "fuse", Chain: "fuse", KeyRef: "FUSE_API_KEY", ChainID: 122,
		APIURL: "https://explorer.fuse.io/api", BrowserURL: "https://explorer.fuse.io"},
	{Network: "spark", Chain: "spark", KeyRef: "FUSE_API_KEY", ChainID: 123,
		APIURL: "https://explorer.fusespark.io/api", BrowserURL: "https://explorer.fusespark.io"},
	{Network: "evmosMain", Chain: "evmos", KeyRef: "EVMOS_API_KEY", ChainID: 9001,
		APIURL: "https://api.verify.mintscan.io/evm/api/0x2329", BrowserURL: "https://www.mintscan.io/evmos"},
	{Network: "evmosTestnet", Chain: "evmosTestnet", KeyRef: "EVMOS_API_KEY", ChainID: 9000,
		APIURL: "https://api.verify.mintscan.io/evm/api/0x2328", BrowserURL: "https://www.mintscan.io/evmos-testnet"},
	{Network: "bobaMain", Chain: "boba", KeyRef: "BOBA_API_KEY", ChainID: 288,
		APIURL: "https://api.routescan.io/v2/network/mainnet/evm/288/etherscan", BrowserURL: "https://bobascan.com"},
	{Network: "bobaTestnet", Chain: "bobaTestnet", KeyRef: "BOBA_API_KEY", ChainID: 2888,
		APIURL: "https://api.routescan.io/v2/network/testnet/evm/2888/etherscan", BrowserURL: "https://testnet.bobascan.com"},
	{Network: "arbitrumNova", Chain: "arbitrumNova", KeyRef: "ARBITRUM_API_KEY", ChainID: 42170,
		APIURL: "https://api-nova.arbiscan.io/api", BrowserURL: "https://nova.arbiscan.io"},
	{Network: "arbitrumSepolia", Chain: "arbitrumSepolia", KeyRef: "ARBITRUM_API_KEY", ChainID: 421614,
		APIURL: "https://api-sepolia.arbiscan.io/api", BrowserURL: "https://sepolia.arbiscan.io"},
	{Network: "cantoMain", Chain: "canto", KeyRef: "CANTO_API_KEY", ChainID: 7700,
		APIURL: "https://tuber.build/api", BrowserURL: "https://tuber.build"},
	{Network: "cantoTestnet", Chain: "cantoTestnet", KeyRef: "CANTO_API_KEY", ChainID: 7701,
		APIURL: "https://testnet.tuber.build/api", BrowserURL: "https://testnet.tuber.build"},
	{Network: "baseMain", Chain: "base", KeyRef: "BASE_API_KEY", ChainID: 8453,
		APIURL: "https://api.basescan.org/api", BrowserURL: "https://basescan.org"},
	{Network: "baseTestnet", Chain: "baseTestnet", KeyRef: "BASE_API_KEY", ChainID: 84531,
		APIURL: "https://api-goerli.basescan.org/api", BrowserURL: "https://goerli.basescan.org"},
	{Network: "baseSepolia", Chain: "baseSepolia", KeyRef: "BASE_API_KEY", ChainID: 84532,
		APIURL: "https://api-sepolia.basescan.org/api", BrowserURL: "https://sepolia.basescan.org"},
	{Network: "mantleMain", Chain: "mantle", KeyRef: "MANTLE_API_KEY", ChainID: 5000,
		APIURL: "https://explorer.mantle.xyz/api", BrowserURL: "https://explorer.mantle.xyz"},
	{Network: "mantleTestnet", Chain: "mantleTestnet", KeyRef: "MANTLE_API_KEY", ChainID: 5003,
		APIURL: "https://explorer.sepolia.mantle.xyz/api", BrowserURL: "https://explorer.sepolia.mantle.xyz"},
	{Network: "filecoinMain", Chain: "filecoin", KeyRef: "FILECOIN_API_KEY", ChainID: 314,
		APIURL: "https://filfox.info/api/v1/tools/verifyContract", BrowserURL: "https://filfox.info/en"},
	{Network: "filecoinTestnet", Chain: "filecoinTestnet", KeyRef: "FILECOIN_API_KEY", ChainID: 314159,
		APIURL: "https://calibration.filfox.info/api/v1/tools/verifyContract", BrowserURL: "https://calibration.filfox.info/en"},
	{Network: "scrollMain", Chain: "scroll", KeyRef: "SCROLL_API_KEY", ChainID: 534352,
		APIURL: "https://api.scrollscan.com/api", BrowserURL: "https://scrollscan.com"},
	{Network: "scrollTestnet", Chain: "scrollTestnet", KeyRef: "SCROLL_API_KEY", ChainID: 534351,
		APIURL: "https://api-sepolia.scrollscan.com/api", BrowserURL: "https://sepolia.scrollscan.com"},
	{Network: "polygonZkEVMMain", Chain: "polygonZkEVM", KeyRef: "POLYGON_ZKEVM_API_KEY", ChainID: 1101,
		APIURL: "https://api-zkevm.polygonscan.com/api", BrowserURL: "https://zkevm.polygonscan.com"},
	{Network: "amoy", Chain: "polygonAmoy", KeyRef: "POLYGON_API_KEY", ChainID: 80002,
		APIURL: "https://api-amoy.polygonscan.com/api", BrowserURL: "https://amoy.polygonscan.com"},
	{Network: "polygonZkEVMTestnet", Chain: "polygonZkEVMTestnet", KeyRef: "POLYGON_ZKEVM_API_KEY", ChainID: 2442,
		APIURL: "https://api-cardona-zkevm.polygonscan.com/api", BrowserURL: "https://cardona-zkevm.polygonscan.com"},
	{Network: "lineaMain", Chain: "linea", KeyRef: "LINEA_API_KEY", ChainID: 59144,
		APIURL: "https://api.lineascan.build/api", BrowserURL: "https://lineascan.build"},
	{Network: "lineaTestnet", Chain: "lineaTestnet", KeyRef: "LINEA_API_KEY", ChainID: 59141,
		APIURL: "https://api-sepolia.lineascan.build/api", BrowserURL: "https://sepolia.lineascan.build"},
	{Network: "shimmerEVMTestnet", Chain: "shimmerEVMTestnet", KeyRef: "SHIMMEREVM_API_KEY", ChainID: 1071,
		APIURL: "https://explorer.evm.testnet.shimmer.network/api", BrowserURL: "https://explorer.evm.testnet.shimmer.network"},
	{Network: "zoraMain", Chain: "zora", KeyRef: "ZORA_API_KEY", ChainID: 7777777,
		APIURL: "https://explorer.zora.energy/api", BrowserURL: "https://explorer.zora.energy"},
	{Network: "zoraTestnet", Chain: "zoraTestnet", KeyRef: "ZORA_API_KEY", ChainID: 999999999,
		APIURL: "https://sepolia.explorer.zora.energy/api", BrowserURL: "https://sepolia.explorer.zora.energy"},
	{Network: "luksoMain", Chain: "lukso", KeyRef: "LUKSO_API_KEY", ChainID: 42,
		APIURL: "https://explorer.execution.mainnet.lukso.network/api", BrowserURL: "https://explorer.execution.mainnet.lukso.network"},
	{Network: "luksoTestnet", Chain: "luksoTestnet", KeyRef: "LUKSO_API_KEY", ChainID: 4201,
		APIURL: "https://explorer.execution.testnet.lukso.network/api", BrowserURL: "https://explorer.execution.testnet.lukso.network"},
	{Network: "mantaMain", Chain: "manta", KeyRef: "MANTA_API_KEY", ChainID: 169,
		APIURL: "https://pacific-explorer.manta.network/api", BrowserURL: "https://pacific-explorer.manta.network"},
	{Network: "mantaTestnet", Chain: "mantaTestnet", KeyRef: "MANTA_API_KEY", ChainID: 3441005,
		APIURL: "https://pacific-explorer.testnet.manta.network/api", BrowserURL: "https://pacific-explorer.testnet.manta.network"},
	{Network: "artheraTestnet", Chain: "artheraTestnet", KeyRef: "ARTHERA_API_KEY", ChainID: 10243,
		APIURL: "https://explorer-test.arthera.net/api", BrowserURL: "https://explorer-test.arthera.net"},
	{Network: "enduranceMain", Chain: "endurance", KeyRef: "ENDURANCE_API_KEY", ChainID: 648,
		APIURL: "https://explorer-endurance.fusionist.io/api", BrowserURL: "https://explorer-endurance.fusionist.io"},
	{Network: "enduranceTestnet", Chain: "enduranceTestnet", KeyRef: "ENDURANCE_API_KEY", ChainID: 6480,
		APIURL: "https://myexplorertestnet.fusionist.io/api", BrowserURL: "https://myexplorertestnet.fusionist.io"},
	{Network: "openduranceTestnet", Chain: "openduranceTestnet", KeyRef: "OPENDURANCE_API_KEY", ChainID: 6480001001,
		APIURL: "https://explorer-l2-testnet.fusionist.io/api", BrowserURL: "https://explorer-l2-testnet.fusionist.io"},
	{Network: "blastMain", Chain: "blast", KeyRef: "BLAST_API_KEY", ChainID: 81457,
		APIURL: "https://api.blastscan.io/api", BrowserURL: "https://blastscan.io"},
	{Network: "blastTestnet", Chain: "blastTestnet", KeyRef: "BLAST_API_KEY", ChainID: 168587773,
		APIURL: "https://api-sepolia.blastscan.io/api", BrowserURL: "https://sepolia.blastscan.io"},
	{Network: "kromaMain", Chain: "kroma", KeyRef: "KROMA_API_KEY", ChainID: 255,
		APIURL: "https://api.kromascan.com/api", BrowserURL: "https://kromascan.com"},
	{Network: "kromaTestnet", Chain: "kromaTestnet", KeyRef: "KROMA_API_KEY", ChainID: 2358,
		APIURL: "https://api-sepolia.kromascan.com", BrowserURL: "https://sepolia.kromascan.com"},
	{Network: "dosMain", Chain: "dos", KeyRef: "DOS_API_KEY", ChainID: 7979,
		APIURL: "https://doscan.io/api", BrowserURL: "https://doscan.io"},
	{Network: "dosTestnet", Chain: "dosTestnet", KeyRef: "DOS_API_KEY", ChainID: 3939,
		APIURL: "https://test.doscan.io/api", BrowserURL: "https://test.doscan.io"},
	{Network: "fraxtalMain", Chain: "fraxtal", KeyRef: "FRAXTAL_API_KEY", ChainID: 252,
		APIURL: "https://api.fraxscan.com/api", BrowserURL: "https://fraxscan.com"},
	{Network: "fraxtalTestnet", Chain: "fraxtalTestnet", KeyRef: "FRAXTAL_API_KEY", ChainID: 2522,
		APIURL: "https://api-holesky.fraxscan.com/api", BrowserURL: "https://holesky.fraxscan.com"},
	{Network: "kavaMain", Chain: "kava", KeyRef: "KAVA_API_KEY", ChainID: 2222,
		APIURL: "https://kavascan.com/api", BrowserURL: "https://kavascan.com"},
	{Network: "metisMain", Chain: "metis", KeyRef: "METIS_API_KEY", ChainID: 1088,
		APIURL: "https://andromeda-explorer.metis.io/api", BrowserURL: "https://andromeda-explorer.metis.io"},
	{Network: "metisTestnet", Chain: "metisTestnet", KeyRef: "METIS_API_KEY", ChainID: 59902,
		APIURL: "https://sepolia-explorer.metisdevops.link/api", BrowserURL: "https://sepolia-explorer.metisdevops.link"},
	{Network: "modeMain", Chain: "mode", KeyRef: "MODE_API_KEY", ChainID: 34443,
		APIURL: "https://explorer.mode.network/api", BrowserURL: "https://explorer.mode.network"},
	{Network: "modeTestnet", Chain: "modeTestnet", KeyRef: "MODE_API_KEY", ChainID: 919,
		APIURL: "https://sepolia.explorer.mode.network/api", BrowserURL: "https://sepolia.explorer.mode.network"},
	{Network: "xlayerMain", Chain: "xlayer", KeyRef: "OKLINK_API_KEY", ChainID: 196,
		APIURL: "https://www.oklink.com/api/v5/explorer/contract/verify-source-code-plugin/XLAYER", BrowserURL: "https://www.oklink.com/xlayer"},
	{Network: "xlayerTestnet", Chain: "xlayerTestnet", KeyRef: "OKLINK_API_KEY", ChainID: 195,
		APIURL: "https://www.oklink.com/api/v5/explorer/contract/verify-source-code-plugin/XLAYER_TESTNET", BrowserURL: "https://www.oklink.com/xlayer-test"},
	{Network: "bobMain", Chain: "bob", KeyRef: "BOB_API_KEY", ChainID: 60808,
		APIURL: "https://explorer.gobob.xyz/api", BrowserURL: "https://explorer.gobob.xyz"},
	{Network: "bobTestnet", Chain: "bobTestnet", KeyRef: "BOB_API_KEY", ChainID: 111,
		APIURL: "https://testnet-explorer.gobob.xyz/api", BrowserURL: "https://testnet-explorer.gobob.xyz"},
	{Network: "coreMain", Chain: "core", KeyRef: "CORE_MAINNET_API_KEY", ChainID: 1116,
		APIURL: "https://openapi.coredao.org/api", BrowserURL: "https://scan.coredao.org"},
	{Network: "coreTestnet", Chain: "coreTestnet", KeyRef: "CORE_TESTNET_API_KEY", ChainID: 1115,
		APIURL: "https://api.test.btcs.network/api", BrowserURL: "https://scan.test.btcs.network"},
	{Network: "telosMain", Chain: "telos", KeyRef: "TELOS_API_KEY", ChainID: 40,
		APIURL: "https://api.teloscan.io/api", BrowserURL: "https://www.teloscan.io"},
	{Network: "telosTestnet", Chain: "telosTestnet", KeyRef: "TELOS_API_KEY", ChainID: 41,
		APIURL: "https://api.testnet.teloscan.io/api", BrowserURL: "https://testnet.teloscan.io"},
	{Network: "rootstockMain", Chain: "rootstock", KeyRef: "ROOTSTOCK_API_KEY", ChainID: 30,
		APIURL: "https://rootstock.blockscout.com/api", BrowserURL: "https://rootstock.blockscout.com"},
	{Network: "rootstockTestnet", Chain: "rootstockTestnet", KeyRef: "ROOTSTOCK_API_KEY", ChainID: 31,
		APIURL: "https://rootstock-testnet.blockscout.com/api", BrowserURL: "https://rootstock-testnet.blockscout.com"},
	{Network: "chilizTestnet", Chain: "chilizTestnet", KeyRef: "CHILIZ_API_KEY", ChainID: 88882,
		APIURL: "https://api.routescan.io/v2/network/testnet/evm/88882/etherscan/api", BrowserURL: "https://testnet.chiliscan.com"},
}
