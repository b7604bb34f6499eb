package volumes_leaderboard

// NFTCounts holds the bonus-NFT holdings attached to a leaderboard record
type NFTCounts struct {
	GoldNFT int `json:"gold_nft"`
	RingNFT int `json:"ring_nft"`
	BlobNFT int `json:"blob_nft"`
}

// RawVolumeRecord is a single leaderboard record as returned by the trading
// API. Monetary fields are base-10 integer strings in base units and must not
// be parsed as floats. The record is owned by the response and never mutated.
type RawVolumeRecord struct {
	Username        *string    `json:"username"`
	DisplayName     *string    `json:"display_name"`
	ProfileImageURL *string    `json:"profile_image_url"`
	Balance         string     `json:"balance"`
	VolumeIn        string     `json:"volume_in"`
	VolumeOut       string     `json:"volume_out"`
	TradingPoints   string     `json:"trading_points"`
	TransferCount   int        `json:"transfer_count"`
	Rank            *int       `json:"rank,omitempty"`
	NFTCounts       *NFTCounts `json:"nft_counts,omitempty"`
	PresaleType     []string   `json:"presale_type,omitempty"`
	WalletAddresses []string   `json:"wallet_addresses,omitempty"`
}

// Pagination describes the server-side pagination of a page response.
// Pages is ceil(Total/Limit) as computed by the backend.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// PageEnvelope is one page of leaderboard records with its pagination info
type PageEnvelope struct {
	Items      []RawVolumeRecord `json:"items"`
	Pagination Pagination        `json:"pagination"`
}

// DisplayRow is a leaderboard record shaped for rendering. Numeric fields are
// display floats derived from the exact base-unit amounts; they are
// presentation values only.
type DisplayRow struct {
	Rank           int        `json:"rank"`
	User           string     `json:"user"`
	Avatar         string     `json:"avatar"`
	TradingScore   float64    `json:"tradingScore"`
	BuyVolume      float64    `json:"buyVolume"`
	SellVolume     float64    `json:"sellVolume"`
	CurrentBalance float64    `json:"currentBalance"`
	NFTCounts      *NFTCounts `json:"nftCounts,omitempty"`
}
