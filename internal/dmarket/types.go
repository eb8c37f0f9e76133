package dmarket

// MarketItem is one offer as returned by the DMarket exchange API.
type MarketItem struct {
	ItemID string            `json:"itemId"`
	Title  string            `json:"title"`
	GameID string            `json:"gameId"`
	Price  map[string]string `json:"price"` // currency -> amount in minor units
	Extra  *ItemExtra        `json:"extra,omitempty"`
}

// ItemExtra carries the item-specific attributes DMarket reports for games
// that have them. Fields are omitted for items without the attribute.
type ItemExtra struct {
	FloatValue    *float64      `json:"floatValue,omitempty"`
	PaintSeed     *int          `json:"paintSeed,omitempty"`
	Phase         string        `json:"phase,omitempty"`
	Stickers      []ItemSticker `json:"stickers,omitempty"`
	Category      string        `json:"category,omitempty"`
	TradeLockDays int           `json:"tradeLock,omitempty"`
}

// ItemSticker is one sticker applied to an item.
type ItemSticker struct {
	Name string `json:"name"`
}

// MarketItemsResponse is the paged listing response.
type MarketItemsResponse struct {
	Objects []MarketItem `json:"objects"`
	Total   string       `json:"total"`
	Cursor  string       `json:"cursor,omitempty"`
}

// Sale is one historical sale of an item.
type Sale struct {
	Price string `json:"price"` // minor units
	Date  int64  `json:"date"`  // unix seconds
}

// LastSalesResponse is the sales-history response.
type LastSalesResponse struct {
	Sales []Sale `json:"sales"`
}

// BalanceResponse is the account balance, amounts in minor units as strings.
type BalanceResponse struct {
	USD string `json:"usd"`
}

// BuyOfferResponse confirms (or not) a purchase attempt.
type BuyOfferResponse struct {
	TxID   string `json:"txId"`
	Status string `json:"status"`
}

// Known gameId values on DMarket.
const (
	GameIDCS   = "a8db"
	GameIDDota = "9a92"
	GameIDRust = "rust"
	GameIDTF2  = "tf2"
)
