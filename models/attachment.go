package models

import "time"

// AttachmentRecord is a document a client uploaded (bloodwork, progress photos,
// meal logs). Owned by exactly one client; only the owner or an admin may flip
// VisibleToCoaches.
type AttachmentRecord struct {
	ID               string    `bson:"id" json:"id"`
	OwnerClientID    string    `bson:"ownerClientId" json:"ownerClientId"`
	Title            string    `bson:"title" json:"title"`
	URL              string    `bson:"url" json:"url"`
	PublicID         string    `bson:"publicId,omitempty" json:"-"` // storage identifier (Cloudinary)
	CreatedAt        time.Time `bson:"createdAt" json:"createdAt"`
	VisibleToCoaches bool      `bson:"visibleToCoaches" json:"visibleToCoaches"`
}
