package models

// Item is the echo payload returned by the /items/{id} endpoint.
type Item struct {
	// ItemID is the identifier taken from the URL path.
	ItemID int64 `json:"item_id"`

	// Q is the optional free-form query string. Serialized as null when the
	// request carried no "q" parameter.
	Q *string `json:"q"`
}
