package interests

// Category represents one suggested interest tag
type Category struct {
	Name           string  `json:"name" bson:"name"`
	DisplayName    string  `json:"displayName" bson:"-"`
	UserCount      int     `json:"userCount" bson:"count"`
	RelevanceScore float64 `json:"relevanceScore" bson:"-"`
}

// SaveInterestsRequest for POST /users/me/interests
type SaveInterestsRequest struct {
	Tags []string `json:"tags" binding:"required,min=1,max=10,dive,min=2,max=30"`
}

// SuggestedInterestsResponse for GET /interests/suggested
type SuggestedInterestsResponse struct {
	Categories   []Category `json:"categories"`
	Personalized bool       `json:"personalized"`
}

// TagCountResult from aggregation
type TagCountResult struct {
	Name  string `bson:"_id"`
	Count int    `bson:"count"`
}
