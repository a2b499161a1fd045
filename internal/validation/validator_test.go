// Social Media App - Graph-Backed Social Content API
// Copyright 2026 Moneeb Shammout (moneebshammout)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moneebshammout/social-media-app

package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moneebshammout/social-media-app/internal/models"
)

func validPoll() models.CreatePollRequest {
	return models.CreatePollRequest{
		ID:     "poll-1",
		Genres: []string{"sports"},
		Data: models.PollData{
			OwnerID:      "u1",
			OwnerName:    "amal",
			OwnerImageID: "img-1",
			ImageID:      []string{"a", "b"},
			Type:         "single",
		},
	}
}

func TestValidateStructPasses(t *testing.T) {
	req := validPoll()
	assert.Nil(t, ValidateStruct(&req))
}

func TestValidateStructPollType(t *testing.T) {
	req := validPoll()
	req.Data.Type = "triple"

	err := ValidateStruct(&req)
	require.NotNil(t, err)
	require.Len(t, err.Errors(), 1)
	assert.Equal(t, "Type", err.Errors()[0].Field())
	assert.Equal(t, "oneof", err.Errors()[0].Tag())
	assert.Contains(t, err.Error(), "single double")
}

func TestValidateStructCollectsAllViolations(t *testing.T) {
	req := models.CreatePollRequest{}

	err := ValidateStruct(&req)
	require.NotNil(t, err)
	assert.GreaterOrEqual(t, len(err.Errors()), 2)

	violations := err.Violations()
	require.Len(t, violations, len(err.Errors()))
	assert.Equal(t, "ID", violations[0]["field"])
	assert.Equal(t, "required", violations[0]["tag"])
}

func TestValidateStructRequiredWithout(t *testing.T) {
	paid := false
	req := models.CreatePostRequest{
		ID:   "post-1",
		Paid: &paid,
		Data: models.PostData{
			OwnerID:      "u1",
			OwnerName:    "amal",
			OwnerImageID: "img-1",
		},
	}

	err := ValidateStruct(&req)
	require.NotNil(t, err)
	assert.Equal(t, "Description", err.Errors()[0].Field())

	req.Data.Media = &models.MediaData{ID: "m1", Type: "video"}
	assert.Nil(t, ValidateStruct(&req))

	req.Data.Media = nil
	req.Data.Description = "hello"
	assert.Nil(t, ValidateStruct(&req))
}

func TestValidateStructUpdateUserSections(t *testing.T) {
	req := models.UpdateUserRequest{ID: "u1"}
	err := ValidateStruct(&req)
	require.NotNil(t, err)

	req.Profile = &models.UpdateProfileData{Bio: "hi"}
	assert.Nil(t, ValidateStruct(&req))

	req.Profile = nil
	req.User = &models.UpdateUserData{Email: "not-an-email"}
	err = ValidateStruct(&req)
	require.NotNil(t, err)
	assert.Equal(t, "email", err.Errors()[0].Tag())
}

func TestValidateStructRelationAlias(t *testing.T) {
	req := models.RelationRequest{FromID: "a", ToID: "b", Relation: "follow"}
	assert.Nil(t, ValidateStruct(&req))

	req.Relation = "poke"
	err := ValidateStruct(&req)
	require.NotNil(t, err)
	assert.Equal(t, "oneof", err.Errors()[0].Tag())
}

func TestValidateStructPagination(t *testing.T) {
	q := models.PaginationQuery{ID: "u1", Page: 1}
	assert.Nil(t, ValidateStruct(&q))

	q.Page = 0
	err := ValidateStruct(&q)
	require.NotNil(t, err)
	assert.Equal(t, "Page", err.Errors()[0].Field())
}
