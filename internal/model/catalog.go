package model

// CatalogEntry represents a rentable game as stored in the `catalog`
// table. Prices are carried as integer cents in Go and as DECIMAL(10,2)
// in the database; repositories convert at the boundary. Catalog rows are
// mutated only by managers and must exist before they can be ordered.
//
// Fields:
//  GameID      – unique game identifier, primary key.
//  GameName    – display name, up to 300 characters.
//  Genre       – genre label, up to 30 characters.
//  PriceCents  – rental price in cents, never negative.
//  Description – free-text description.
//  ImageURL    – image reference, up to 20 characters.
type CatalogEntry struct {
	GameID      string // catalog.game_id
	GameName    string // catalog.game_name
	Genre       string // catalog.genre
	PriceCents  int64  // catalog.price (DECIMAL(10,2))
	Description string // catalog.description
	ImageURL    string // catalog.image_url
}
