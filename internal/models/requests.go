// Social Media App - Graph-Backed Social Content API
// Copyright 2026 Moneeb Shammout (moneebshammout)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moneebshammout/social-media-app

package models

// Request DTOs. Validation rules are expressed as validator/v10 struct tags
// and run through internal/validation before any query executes. A failing
// request is rejected whole with a per-field violation list and no side
// effects.

// IDQuery is the single-id query-string shape shared by many GET endpoints.
type IDQuery struct {
	ID string `validate:"required"`
}

// PaginationQuery is the common id+page query-string shape. Page is 1-based;
// Limit falls back to the query's own default when zero. Search is honored
// only by the relation listing endpoints.
type PaginationQuery struct {
	ID     string `validate:"required"`
	Page   int    `validate:"required,min=1"`
	Limit  int    `validate:"omitempty,min=1"`
	Search string `validate:"omitempty"`
}

// NamePaginationQuery pages results matched by name prefix or full text.
type NamePaginationQuery struct {
	Name  string `validate:"required"`
	Page  int    `validate:"required,min=1"`
	Limit int    `validate:"omitempty,min=1"`
}

// ViewerPaginationQuery pages one owner's content as seen by a viewer.
type ViewerPaginationQuery struct {
	OwnerID  string `validate:"required"`
	ViewerID string `validate:"required"`
	Page     int    `validate:"required,min=1"`
	Limit    int    `validate:"omitempty,min=1"`
}

// AuthorizeViewQuery checks whether a viewer may see an owner's profile.
type AuthorizeViewQuery struct {
	ViewerID string `validate:"required"`
	OwnerID  string `validate:"required"`
}

// UserNameQuery looks users up by userName. Limit 1 means exact match.
type UserNameQuery struct {
	UserName string `validate:"required"`
	Page     int    `validate:"required,min=1"`
	Limit    int    `validate:"omitempty,min=1"`
}

// CreateUserRequest creates the User, its Profile and Paid containers and
// the INTERESTED_IN genre edges in one shot.
type CreateUserRequest struct {
	ID        string            `json:"id" validate:"required"`
	Data      CreateUserData    `json:"data" validate:"required"`
	Profile   CreateProfileData `json:"profile" validate:"required"`
	Interests []string          `json:"interests" validate:"required,min=1,dive,required"`
}

// CreateUserData carries the User node properties.
type CreateUserData struct {
	Name      string `json:"name" validate:"required"`
	UserName  string `json:"userName" validate:"required"`
	Gender    string `json:"gender" validate:"required"`
	Location  string `json:"location" validate:"required"`
	Provider  string `json:"provider" validate:"required"`
	BirthDate string `json:"birthDate" validate:"required,datetime=2006-01-02"`
	Email     string `json:"email" validate:"omitempty,email"`
	Phone     string `json:"phone" validate:"omitempty"`
}

// CreateProfileData carries the Profile node properties.
type CreateProfileData struct {
	ImageID string `json:"imageId" validate:"required"`
	Bio     string `json:"bio" validate:"omitempty"`
}

// UpdateUserRequest patches user and/or profile properties. At least one of
// the two sections must be present.
type UpdateUserRequest struct {
	ID      string             `json:"id" validate:"required"`
	User    *UpdateUserData    `json:"user" validate:"required_without=Profile"`
	Profile *UpdateProfileData `json:"profile" validate:"required_without=User"`
}

// UpdateUserData carries optional User property updates.
type UpdateUserData struct {
	Name      string `json:"name,omitempty" validate:"omitempty"`
	UserName  string `json:"userName,omitempty" validate:"omitempty"`
	Gender    string `json:"gender,omitempty" validate:"omitempty"`
	Location  string `json:"location,omitempty" validate:"omitempty"`
	Phone     string `json:"phone,omitempty" validate:"omitempty"`
	Email     string `json:"email,omitempty" validate:"omitempty,email"`
	BirthDate string `json:"birthDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateProfileData carries optional Profile property updates.
type UpdateProfileData struct {
	Bio          string   `json:"bio,omitempty" validate:"omitempty"`
	ImageID      string   `json:"imageId,omitempty" validate:"omitempty"`
	CoverID      string   `json:"coverId,omitempty" validate:"omitempty"`
	ImageHistory []string `json:"imageHistory,omitempty" validate:"omitempty,min=1,dive,required"`
	CoverHistory []string `json:"coverHistory,omitempty" validate:"omitempty,min=1,dive,required"`
}

// RelationRequest creates or deletes one aliased relationship from a user.
type RelationRequest struct {
	FromID   string `json:"fromId" validate:"required"`
	ToID     string `json:"toId" validate:"required"`
	Relation string `json:"relation" validate:"required,oneof=follow subscribe like dis_like un_certain right_like left_like post_up_vote post_down_vote review_up_vote review_down_vote"`
}

// TagUsersRequest tags users by userName in a content item.
type TagUsersRequest struct {
	UserNames []string `json:"userNames" validate:"required,min=1,dive,required"`
	Entity    string   `json:"entity" validate:"required,oneof=Poll Review Post"`
	EntityID  string   `json:"entityId" validate:"required"`
}

// CreatePollRequest creates a poll owned by Data.OwnerID.
type CreatePollRequest struct {
	ID     string   `json:"id" validate:"required"`
	Genres []string `json:"genres" validate:"omitempty,min=1,dive,required"`
	Data   PollData `json:"data" validate:"required"`
}

// PollData carries the Poll node properties.
type PollData struct {
	OwnerID      string   `json:"ownerId" validate:"required"`
	OwnerName    string   `json:"ownerName" validate:"required"`
	OwnerImageID string   `json:"ownerImageId" validate:"required"`
	ImageID      []string `json:"imageId" validate:"required,min=1,dive,required"`
	Description  string   `json:"description" validate:"omitempty"`
	Type         string   `json:"type" validate:"required,oneof=single double"`
}

// EndPollQuery ends a poll; ownerId drives cache invalidation.
type EndPollQuery struct {
	ID      string `validate:"required"`
	OwnerID string `validate:"required"`
}

// GenrePollsQuery pages polls of one genre as seen by the viewer ID.
type GenrePollsQuery struct {
	Genre string `validate:"required"`
	ID    string `validate:"required"`
	Page  int    `validate:"required,min=1"`
	Limit int    `validate:"omitempty,min=1"`
}

// MediaData identifies an uploaded media object.
type MediaData struct {
	ID   string `json:"id" validate:"required"`
	Type string `json:"type" validate:"required"`
}

// CreatePostRequest creates a post in the owner's profile or paid section.
// At least one of description or media must be present.
type CreatePostRequest struct {
	ID     string   `json:"id" validate:"required"`
	Paid   *bool    `json:"paid" validate:"required"`
	Genres []string `json:"genres" validate:"omitempty,min=1,dive,required"`
	Data   PostData `json:"data" validate:"required"`
}

// PostData carries the Post node properties.
type PostData struct {
	OwnerID      string     `json:"ownerId" validate:"required"`
	OwnerName    string     `json:"ownerName" validate:"required"`
	OwnerImageID string     `json:"ownerImageId" validate:"required"`
	Description  string     `json:"description" validate:"required_without=Media"`
	Media        *MediaData `json:"media" validate:"omitempty"`
}

// RepostRequest reposts an existing post into the user's timeline.
type RepostRequest struct {
	UserID      string `json:"userId" validate:"required"`
	PostID      string `json:"postId" validate:"required"`
	RepostID    string `json:"repostId" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// UpdatePostRequest replaces the description, preserving it in history.
type UpdatePostRequest struct {
	ID          string `json:"id" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// PostsByDescriptionQuery pages public posts by description substring.
type PostsByDescriptionQuery struct {
	Description string `validate:"required"`
	ID          string `validate:"required"`
	Page        int    `validate:"required,min=1"`
	Limit       int    `validate:"omitempty,min=1"`
}

// CreateReviewRequest creates a review in the owner's profile or paid section.
type CreateReviewRequest struct {
	ID     string     `json:"id" validate:"required"`
	Paid   *bool      `json:"paid" validate:"required"`
	Genres []string   `json:"genres" validate:"omitempty,min=1,dive,required"`
	Data   ReviewData `json:"data" validate:"required"`
}

// ReviewData carries the Review node properties.
type ReviewData struct {
	OwnerID      string     `json:"ownerId" validate:"required"`
	OwnerName    string     `json:"ownerName" validate:"required"`
	OwnerImageID string     `json:"ownerImageId" validate:"required"`
	ProductName  string     `json:"productName" validate:"required"`
	ProductFirm  string     `json:"productFirm" validate:"required"`
	Rate         int        `json:"rate" validate:"required"`
	Description  string     `json:"description" validate:"required_without=Media"`
	Media        *MediaData `json:"media" validate:"omitempty"`
}

// ReviewsByNameQuery pages public reviews matched by product or firm name.
type ReviewsByNameQuery struct {
	Name  string `validate:"required"`
	ID    string `validate:"required"`
	Page  int    `validate:"required,min=1"`
	Limit int    `validate:"omitempty,min=1"`
}

// CreateCommentRequest attaches a comment to a poll, post or another comment.
type CreateCommentRequest struct {
	ID       string      `json:"id" validate:"required"`
	Entity   string      `json:"entity" validate:"required,oneof=Poll Post Comment"`
	EntityID string      `json:"entityId" validate:"required"`
	Data     CommentData `json:"data" validate:"required"`
}

// CommentData carries the Comment node properties.
type CommentData struct {
	OwnerID      string `json:"ownerId" validate:"required"`
	OwnerName    string `json:"ownerName" validate:"required"`
	OwnerImageID string `json:"ownerImageId" validate:"required"`
	Comment      string `json:"comment" validate:"required"`
}

// UpdateCommentRequest replaces the comment text, preserving it in history.
type UpdateCommentRequest struct {
	ID      string `json:"id" validate:"required"`
	Comment string `json:"comment" validate:"required"`
}

// CommentsQuery pages comments attached to one content item.
type CommentsQuery struct {
	ID     string `validate:"required"`
	Entity string `validate:"required,oneof=Poll Post Comment"`
	Page   int    `validate:"required,min=1"`
	Limit  int    `validate:"omitempty,min=1"`
}
