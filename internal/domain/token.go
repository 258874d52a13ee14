package domain

import "time"

// MetadataTemplateURI is the single descriptor template shared by all
// proof-of-booking tokens.
const MetadataTemplateURI = "https://raw.githubusercontent.com/JkrishnaD/slot-mint-asset/main/metadata/template.json"

// Token is a unique, non-fungible proof-of-booking minted to the user
// at booking time. Its lifecycle is independent of the reservation:
// cancelling a reservation does not revoke the token.
type Token struct {
	ID        string    `json:"id"`
	Owner     string    `json:"owner"`
	Metadata  *Metadata `json:"metadata,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Metadata is the descriptor attached to a token.
type Metadata struct {
	Name       string      `json:"name"`
	Symbol     string      `json:"symbol"`
	URI        string      `json:"uri"`
	Attributes []Attribute `json:"attributes"`
}

type Attribute struct {
	TraitType string `json:"trait_type"`
	Value     string `json:"value"`
}

// BuildMetadata assembles the token descriptor for a booked slot: the
// experience title as the name, the location as the symbol, the fixed
// template URI, and the slot bounds as attributes.
func BuildMetadata(e *Experience, startTime, endTime int64) *Metadata {
	var location string
	if e.Location != nil {
		location = *e.Location
	}

	return &Metadata{
		Name:   e.Title,
		Symbol: location,
		URI:    MetadataTemplateURI,
		Attributes: []Attribute{
			{TraitType: "experience", Value: e.Title},
			{TraitType: "start_time", Value: formatEpoch(startTime)},
			{TraitType: "end_time", Value: formatEpoch(endTime)},
			{TraitType: "location", Value: location},
		},
	}
}

func formatEpoch(ts int64) string {
	return time.Unix(ts, 0).UTC().Format(time.RFC3339)
}
