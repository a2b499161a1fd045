// Social Media App - Graph-Backed Social Content API
// Copyright 2026 Moneeb Shammout (moneebshammout)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moneebshammout/social-media-app

package models

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// FeedEntity discriminates the variants of a feed row.
type FeedEntity string

const (
	FeedActivePoll FeedEntity = "ActivePoll"
	FeedEndedPoll  FeedEntity = "EndedPoll"
	FeedPost       FeedEntity = "Post"
	FeedReview     FeedEntity = "Review"
)

// Valid reports whether e is a known feed entity.
func (e FeedEntity) Valid() bool {
	switch e {
	case FeedActivePoll, FeedEndedPoll, FeedPost, FeedReview:
		return true
	}
	return false
}

// RepostData is the frozen snapshot of an original post carried on a REPOST
// edge, plus whether the viewer is allowed to see the original.
type RepostData struct {
	AllowView   bool   `json:"allowView"`
	ID          string `json:"id"`
	Media       any    `json:"media,omitempty"`
	ImageID     any    `json:"imageId,omitempty"`
	CreatedDate string `json:"createdDate"`
	OwnerID     string `json:"ownerId"`
	OwnerName   string `json:"ownerName"`
	OwnerImage  string `json:"ownerImageId"`
	Description string `json:"description"`
}

// FeedItem is one row of a feed: common content fields plus a variant payload
// selected by Entity. Exactly one variant shape is present in Extra, keyed by
// the discriminant, so consumers never probe for fields across variants.
type FeedItem struct {
	Entity      FeedEntity     `json:"entity"`
	ID          string         `json:"id"`
	CreatedDate string         `json:"createdDate"`
	Description string         `json:"description,omitempty"`
	OwnerID     string         `json:"ownerId"`
	OwnerName   string         `json:"ownerName"`
	OwnerImage  string         `json:"ownerImageId"`
	Extra       map[string]any `json:"-"`
}

// NewFeedItem builds a FeedItem from a normalized feed row. The row's
// "properties" payload must carry the entity discriminant; remaining
// variant fields stay in Extra and are flattened on marshal.
func NewFeedItem(row map[string]any) (FeedItem, error) {
	item := FeedItem{Extra: map[string]any{}}
	for key, value := range row {
		switch key {
		case "entity":
			s, _ := value.(string)
			item.Entity = FeedEntity(s)
		case "id":
			item.ID, _ = value.(string)
		case "createdDate":
			item.CreatedDate = stringify(value)
		case "description":
			item.Description, _ = value.(string)
		case "ownerId":
			item.OwnerID, _ = value.(string)
		case "ownerName":
			item.OwnerName, _ = value.(string)
		case "ownerImageId":
			item.OwnerImage, _ = value.(string)
		default:
			if value != nil {
				item.Extra[key] = value
			}
		}
	}
	if !item.Entity.Valid() {
		return FeedItem{}, fmt.Errorf("feed row %q has unknown entity %q", item.ID, item.Entity)
	}
	return item, nil
}

// MarshalJSON flattens the variant payload next to the common fields.
func (f FeedItem) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(f.Extra)+7)
	for k, v := range f.Extra {
		out[k] = v
	}
	out["entity"] = f.Entity
	out["id"] = f.ID
	out["createdDate"] = f.CreatedDate
	out["ownerId"] = f.OwnerID
	out["ownerName"] = f.OwnerName
	out["ownerImageId"] = f.OwnerImage
	if f.Description != "" {
		out["description"] = f.Description
	}
	return json.Marshal(out)
}

func stringify(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
