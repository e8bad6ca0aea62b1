package repository

import "github.com/aliskhannn/nft-marketplace-quiz/internal/domain/entities"

// questionBank holds the hand-authored questions about the NFT patent
// marketplace codebase. The file/line references in the explanations are
// part of the authored text and are shown as-is.
var questionBank = []*entities.Question{
	{
		Prompt:       "When a user searches for patents, which file handles the initial user input?",
		Options:      []string{"src/services/patentApi.ts", "src/pages/PatentSearchPage.tsx"},
		CorrectIndex: 1,
		Explanation:  "PatentSearchPage.tsx:33 (handleSearch) handles the user clicking the search button",
	},
	{
		Prompt:       "Which backend route processes patent search requests?",
		Options:      []string{"backend/routes/patents.js", "backend/routes/ipfs.js"},
		CorrectIndex: 0,
		Explanation:  "backend/routes/patents.js:62 (GET /api/patents/search) receives and processes search requests",
	},
	{
		Prompt:       "When minting an NFT, which service orchestrates the entire minting process?",
		Options:      []string{"src/services/patentPdfService.ts", "src/services/mintingService.ts"},
		CorrectIndex: 1,
		Explanation:  "mintingService.ts:48 (mintPatentNFT) orchestrates the complete minting workflow",
	},
	{
		Prompt:       "Which smart contract function actually mints the NFT on the blockchain?",
		Options:      []string{"contracts/PatentNFT.sol:52 (mintPatentNFT)", "contracts/NFTMarketplace.sol (getAllActiveListings)"},
		CorrectIndex: 0,
		Explanation:  "PatentNFT.sol:52 (mintPatentNFT) handles the actual NFT minting on blockchain",
	},
	{
		Prompt:       "Where is the PDF processing for patents handled?",
		Options:      []string{"backend/routes/pdf.js", "src/utils/web3Utils.ts"},
		CorrectIndex: 0,
		Explanation:  "backend/routes/pdf.js:8 (POST /api/pdf/process-patent) generates placeholder PDFs",
	},
	{
		Prompt:       "Which file handles IPFS metadata uploads via Pinata?",
		Options:      []string{"src/services/patentApi.ts", "backend/routes/ipfs.js"},
		CorrectIndex: 1,
		Explanation:  "backend/routes/ipfs.js:67 (POST /api/pinata/upload-json) uploads metadata to IPFS",
	},
	{
		Prompt:       "When viewing marketplace listings, which service fetches the listings?",
		Options:      []string{"src/services/marketplaceService.ts", "src/services/mintingService.ts"},
		CorrectIndex: 0,
		Explanation:  "marketplaceService.ts:75 (getMarketplaceListings) fetches marketplace listings",
	},
	{
		Prompt:       "Which file contains the wallet connection and network verification logic?",
		Options:      []string{"src/utils/contracts.ts", "src/utils/web3Utils.ts"},
		CorrectIndex: 1,
		Explanation:  "web3Utils.ts handles MetaMask connection verification and network switching",
	},
	{
		Prompt:       "Where are the smart contract instances created?",
		Options:      []string{"src/utils/contracts.ts", "src/services/patentApi.ts"},
		CorrectIndex: 0,
		Explanation:  "contracts.ts (getPatentNFTContract) creates contract instances with signers",
	},
	{
		Prompt:       "Which smart contract checks if a patent already exists before minting?",
		Options:      []string{"contracts/NFTMarketplace.sol", "contracts/PatentNFT.sol"},
		CorrectIndex: 1,
		Explanation:  "PatentNFT.sol:97 (patentExists) checks if each patent is already minted",
	},
	{
		Prompt:       "What is the minimum minting fee required by the smart contract?",
		Options:      []string{"0.025 ETH", "0.05 ETH"},
		CorrectIndex: 1,
		Explanation:  "PatentNFT.sol:53 verifies payment >= 0.05 ETH for minting",
	},
	{
		Prompt:       "Which page component handles the marketplace UI?",
		Options:      []string{"src/pages/MarketplacePage.tsx", "src/pages/PatentSearchPage.tsx"},
		CorrectIndex: 0,
		Explanation:  "MarketplacePage.tsx:47 loads and displays marketplace listings",
	},
	{
		Prompt:       "Where is the routing configuration that maps /marketplace to the marketplace page?",
		Options:      []string{"src/App.tsx", "src/main.tsx"},
		CorrectIndex: 0,
		Explanation:  "App.tsx:27 contains the route /marketplace → <MarketplacePage />",
	},
	{
		Prompt:       "Which external API is used to fetch patent data?",
		Options:      []string{"Google Patents via SerpAPI", "USPTO Direct API"},
		CorrectIndex: 0,
		Explanation:  "backend/routes/patents.js:80 calls SerpAPI to access Google Patents data",
	},
	{
		Prompt:       "What percentage marketplace fee is collected on sales?",
		Options:      []string{"2.5%", "5%"},
		CorrectIndex: 0,
		Explanation:  "The architecture shows 2.5% platform fee in the NFTMarketplace contract",
	},
}
