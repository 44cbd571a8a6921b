package network

// DeployerRef is the shared credential every non-local network signs with
const DeployerRef = "CREATEX_DEPLOYER"

// Entry is one row of the static network table.
// The RPC URL is URLPrefix + Resolve(URLKey, URLDefault).
type Entry struct {
	Name       string
	ChainID    uint64 // 0 leaves the chain id to the endpoint
	URLKey     string
	URLDefault string
	URLPrefix  string
	Local      bool // no signer required
	InProcess  bool // simulated in memory, forks the mainnet URL on demand
}

// Fork defaults for the in-process network
const (
	ForkURLKey       = "ETH_MAINNET_URL"
	ForkURLDefault   = "https://rpc.ankr.com/eth"
	ForkHardfork     = "cancun"
	ForkInitialFee   = 0
	HardhatChainID   = 31337
	LocalhostRPCURL  = "http://127.0.0.1:8545"
	TenderlyForkBase = "https://rpc.tenderly.co/fork/"
	DevnetBase       = "https://rpc.vnet.tenderly.co/devnet/"
)

func remote(name string, chainID uint64, key, def string) Entry {
	return Entry{Name: name, ChainID: chainID, URLKey: key, URLDefault: def}
}

// DefaultTable lists every network the registry knows about.
// Adding a chain is a data change here plus, if it can be verified, a row in the explorer tables.
var DefaultTable = []Entry{
	// Local and development endpoints
	{Name: "hardhat", ChainID: HardhatChainID, Local: true, InProcess: true},
	{Name: "localhost", URLDefault: LocalhostRPCURL, Local: true},
	{Name: "tenderly", URLKey: "TENDERLY_FORK_ID", URLPrefix: TenderlyForkBase, Local: true},
	{Name: "devnet", URLKey: "TENDERLY_DEVNET_ID", URLPrefix: DevnetBase},

	// Ethereum
	remote("goerli", 5, "ETH_GOERLI_TESTNET_URL", "https://rpc.ankr.com/eth_goerli"),
	remote("sepolia", 11155111, "ETH_SEPOLIA_TESTNET_URL", "https://rpc.sepolia.org"),
	remote("holesky", 17000, "ETH_HOLESKY_TESTNET_URL", "https://holesky.rpc.thirdweb.com"),
	remote("ethMain", 1, "ETH_MAINNET_URL", "https://rpc.ankr.com/eth"),

	// BNB Chain
	remote("bscTestnet", 97, "BSC_TESTNET_URL", "https://data-seed-prebsc-1-s1.binance.org:8545"),
	remote("bscMain", 56, "BSC_MAINNET_URL", "https://bsc-dataseed1.binance.org"),

	// Optimism
	remote("optimismTestnet", 420, "OPTIMISM_TESTNET_URL", "https://goerli.optimism.io"),
	remote("optimismSepolia", 11155420, "OPTIMISM_SEPOLIA_URL", "https://sepolia.optimism.io"),
	remote("optimismMain", 10, "OPTIMISM_MAINNET_URL", "https://mainnet.optimism.io"),

	// Arbitrum
	remote("arbitrumSepolia", 421614, "ARBITRUM_SEPOLIA_URL", "https://sepolia-rollup.arbitrum.io/rpc"),
	remote("arbitrumMain", 42161, "ARBITRUM_MAINNET_URL", "https://arb1.arbitrum.io/rpc"),
	remote("arbitrumNova", 42170, "ARBITRUM_NOVA_URL", "https://nova.arbitrum.io/rpc"),

	// Polygon
	remote("amoy", 80002, "POLYGON_TESTNET_URL", "https://rpc-amoy.polygon.technology"),
	remote("polygonZkEVMTestnet", 2442, "POLYGON_ZKEVM_TESTNET_URL", "https://rpc.cardona.zkevm-rpc.com"),
	remote("polygon", 137, "POLYGON_MAINNET_URL", "https://polygon-rpc.com"),
	remote("polygonZkEVMMain", 1101, "POLYGON_ZKEVM_MAINNET_URL", "https://zkevm-rpc.com"),

	remote("hecoMain", 128, "HECO_MAINNET_URL", "https://http-mainnet.hecochain.com"),

	remote("fantomTestnet", 4002, "FANTOM_TESTNET_URL", "https://rpc.testnet.fantom.network"),
	remote("fantomMain", 250, "FANTOM_MAINNET_URL", "https://rpc.ankr.com/fantom"),

	remote("fuji", 43113, "AVALANCHE_TESTNET_URL", "https://api.avax-test.network/ext/bc/C/rpc"),
	remote("avalanche", 43114, "AVALANCHE_MAINNET_URL", "https://api.avax.network/ext/bc/C/rpc"),

	remote("chiado", 10200, "GNOSIS_TESTNET_URL", "https://rpc.chiadochain.net"),
	remote("gnosis", 100, "GNOSIS_MAINNET_URL", "https://rpc.gnosischain.com"),

	remote("moonbaseAlpha", 1287, "MOONBEAM_TESTNET_URL", "https://rpc.api.moonbase.moonbeam.network"),
	remote("moonriver", 1285, "MOONRIVER_MAINNET_URL", "https://moonriver.public.blastapi.io"),
	remote("moonbeam", 1284, "MOONBEAM_MAINNET_URL", "https://moonbeam.public.blastapi.io"),

	remote("alfajores", 44787, "CELO_TESTNET_URL", "https://alfajores-forno.celo-testnet.org"),
	remote("celo", 42220, "CELO_MAINNET_URL", "https://forno.celo.org"),

	remote("auroraTestnet", 1313161555, "AURORA_TESTNET_URL", "https://testnet.aurora.dev"),
	remote("auroraMain", 1313161554, "AURORA_MAINNET_URL", "https://mainnet.aurora.dev"),

	remote("harmonyTestnet", 1666700000, "HARMONY_TESTNET_URL", "https://api.s0.b.hmny.io"),
	remote("harmonyMain", 1666600000, "HARMONY_MAINNET_URL", "https://api.harmony.one"),

	remote("spark", 123, "FUSE_TESTNET_URL", "https://rpc.fusespark.io"),
	remote("fuse", 122, "FUSE_MAINNET_URL", "https://rpc.fuse.io"),

	remote("cronosTestnet", 338, "CRONOS_TESTNET_URL", "https://evm-t3.cronos.org"),
	remote("cronosMain", 25, "CRONOS_MAINNET_URL", "https://evm.cronos.org"),

	remote("evmosTestnet", 9000, "EVMOS_TESTNET_URL", "https://evmos-testnet.lava.build"),
	remote("evmosMain", 9001, "EVMOS_MAINNET_URL", "https://evmos.lava.build"),

	remote("bobaTestnet", 2888, "BOBA_TESTNET_URL", "https://goerli.boba.network"),
	remote("bobaMain", 288, "BOBA_MAINNET_URL", "https://replica.boba.network"),

	remote("cantoTestnet", 7701, "CANTO_TESTNET_URL", "https://canto-testnet.plexnode.wtf"),
	remote("cantoMain", 7700, "CANTO_MAINNET_URL", "https://canto.slingshot.finance"),

	remote("baseTestnet", 84531, "BASE_TESTNET_URL", "https://goerli.base.org"),
	remote("baseSepolia", 84532, "BASE_SEPOLIA_URL", "https://sepolia.base.org"),
	remote("baseMain", 8453, "BASE_MAINNET_URL", "https://mainnet.base.org"),

	remote("mantleTestnet", 5003, "MANTLE_TESTNET_URL", "https://rpc.sepolia.mantle.xyz"),
	remote("mantleMain", 5000, "MANTLE_MAINNET_URL", "https://rpc.mantle.xyz"),

	remote("filecoinTestnet", 314159, "FILECOIN_TESTNET_URL", "https://rpc.ankr.com/filecoin_testnet"),
	remote("filecoinMain", 314, "FILECOIN_MAINNET_URL", "https://rpc.ankr.com/filecoin"),

	remote("scrollTestnet", 534351, "SCROLL_TESTNET_URL", "https://sepolia-rpc.scroll.io"),
	remote("scrollMain", 534352, "SCROLL_MAINNET_URL", "https://rpc.scroll.io"),

	remote("lineaTestnet", 59141, "LINEA_TESTNET_URL", "https://rpc.sepolia.linea.build"),
	remote("lineaMain", 59144, "LINEA_MAINNET_URL", "https://rpc.linea.build"),

	remote("shimmerEVMTestnet", 1071, "SHIMMEREVM_TESTNET_URL", "https://json-rpc.evm.testnet.shimmer.network"),

	remote("zoraTestnet", 999999999, "ZORA_TESTNET_URL", "https://sepolia.rpc.zora.energy"),
	remote("zoraMain", 7777777, "ZORA_MAINNET_URL", "https://rpc.zora.energy"),

	remote("luksoTestnet", 4201, "LUKSO_TESTNET_URL", "https://rpc.testnet.lukso.network"),
	remote("luksoMain", 42, "LUKSO_MAINNET_URL", "https://rpc.lukso.gateway.fm"),

	remote("mantaTestnet", 3441005, "MANTA_TESTNET_URL", "https://pacific-rpc.testnet.manta.network/http"),
	remote("mantaMain", 169, "MANTA_MAINNET_URL", "https://pacific-rpc.manta.network/http"),

	remote("shardeumTestnet", 8081, "SHARDEUM_TESTNET_URL", "https://dapps.shardeum.org"),

	remote("artheraTestnet", 10243, "ARTHERA_TESTNET_URL", "https://rpc-test.arthera.net"),

	remote("frameTestnet", 68840142, "FRAME_TESTNET_URL", "https://rpc.testnet.frame.xyz/http"),

	remote("enduranceTestnet", 6480, "ENDURANCE_TESTNET_URL", "https://myrpctestnet.fusionist.io"),
	remote("openduranceTestnet", 6480001001, "OPENDURANCE_TESTNET_URL", "https://rpc-l2-testnet.fusionist.io"),
	remote("enduranceMain", 648, "ENDURANCE_MAINNET_URL", "https://rpc-endurance.fusionist.io"),

	remote("blastTestnet", 168587773, "BLAST_TESTNET_URL", "https://sepolia.blast.io"),
	remote("blastMain", 81457, "BLAST_MAINNET_URL", "https://rpc.blast.io"),

	remote("kromaTestnet", 2358, "KROMA_TESTNET_URL", "https://api.sepolia.kroma.network"),
	remote("kromaMain", 255, "KROMA_MAINNET_URL", "https://api.kroma.network"),

	remote("dosTestnet", 3939, "DOS_TESTNET_URL", "https://test.doschain.com"),
	remote("dosMain", 7979, "DOS_MAINNET_URL", "https://main.doschain.com"),

	remote("fraxtalTestnet", 2522, "FRAXTAL_TESTNET_URL", "https://rpc.testnet.frax.com"),
	remote("fraxtalMain", 252, "FRAXTAL_MAINNET_URL", "https://rpc.frax.com"),

	remote("kavaMain", 2222, "KAVA_MAINNET_URL", "https://evm.kava-rpc.com"),

	remote("metisTestnet", 59902, "METIS_TESTNET_URL", "https://sepolia.metisdevops.link"),
	remote("metisMain", 1088, "METIS_MAINNET_URL", "https://andromeda.metis.io/?owner=1088"),

	remote("modeTestnet", 919, "MODE_TESTNET_URL", "https://sepolia.mode.network"),
	remote("modeMain", 34443, "MODE_MAINNET_URL", "https://mainnet.mode.network"),

	remote("seiTestnet", 713715, "SEI_TESTNET_URL", "https://evm-rpc-arctic-1.sei-apis.com"),

	remote("xlayerTestnet", 195, "XLAYER_TESTNET_URL", "https://testrpc.xlayer.tech"),
	remote("xlayerMain", 196, "XLAYER_MAINNET_URL", "https://rpc.xlayer.tech"),

	remote("bobTestnet", 111, "BOB_TESTNET_URL", "https://testnet.rpc.gobob.xyz"),
	remote("bobMain", 60808, "BOB_MAINNET_URL", "https://rpc.gobob.xyz"),

	remote("coreTestnet", 1115, "CORE_TESTNET_URL", "https://rpc.test.btcs.network"),
	remote("coreMain", 1116, "CORE_MAINNET_URL", "https://rpc.coredao.org"),

	remote("telosTestnet", 41, "TELOS_TESTNET_URL", "https://testnet.telos.net/evm"),
	remote("telosMain", 40, "TELOS_MAINNET_URL", "https://mainnet.telos.net/evm"),

	remote("rootstockTestnet", 31, "ROOTSTOCK_TESTNET_URL", "https://public-node.testnet.rsk.co"),
	remote("rootstockMain", 30, "ROOTSTOCK_MAINNET_URL", "https://public-node.rsk.co"),

	remote("chilizTestnet", 88882, "CHILIZ_TESTNET_URL", "https://spicy-rpc.chiliz.com"),
}
