package models

// Community is read-only reference data sourced from the API, with a static
// fallback for disconnected demo environments.
type Community struct {
	ID          string `bson:"id" json:"id"`
	Name        string `bson:"name" json:"name"`
	Category    string `bson:"category" json:"category"`
	Description string `bson:"description" json:"description"`
	MemberCount int    `bson:"member_count" json:"member_count"`
}

// SampleCommunities keeps the community browser populated when the remote
// list is unreachable or empty and the sample-data flag is set.
var SampleCommunities = []Community{
	{ID: "c1", Name: "Portrait Collective", Category: "portrait", Description: "Natural light and studio portrait work.", MemberCount: 1820},
	{ID: "c2", Name: "Editorial & Fashion", Category: "fashion", Description: "Editorial shoots, lookbooks and runway.", MemberCount: 1344},
	{ID: "c3", Name: "Fine Art Nude", Category: "artistic_nude", Description: "Figure studies and fine art nude photography.", MemberCount: 612},
	{ID: "c4", Name: "Street & Documentary", Category: "street", Description: "Candid city life and documentary projects.", MemberCount: 2051},
	{ID: "c5", Name: "Dark Art", Category: "dark_art", Description: "Conceptual horror and dark themed imagery.", MemberCount: 487},
	{ID: "c6", Name: "Analog Film", Category: "film", Description: "35mm, medium format and darkroom printing.", MemberCount: 930},
}
