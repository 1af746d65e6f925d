package dto

type SubmitGenerationRequest struct {
	ContactID string `json:"contact_id" binding:"required"`
	Test      bool   `json:"test"`
}

type CampaignRequest struct {
	// ContactIDs limits the send; empty means every CRM contact.
	ContactIDs []string `json:"contact_ids"`
}

type CreateProjectRequest struct {
	Name     string `json:"name" binding:"required"`
	AvatarID string `json:"avatar_id" binding:"required"`
	Script   string `json:"script" binding:"required"`
}

type ResolveRequest struct {
	// VendorID carries the vendor-side id assigned on approval.
	VendorID string `json:"vendor_id"`
	Reason   string `json:"reason"`
}

type HubspotWebhookEvent struct {
	SubscriptionType string `json:"subscriptionType" binding:"required"`
	ObjectID         int64  `json:"objectId" binding:"required"`
}
