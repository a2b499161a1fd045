// Social Media App - Graph-Backed Social Content API
// Copyright 2026 Moneeb Shammout (moneebshammout)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moneebshammout/social-media-app

package models

// Node labels. Label names are interpolated into cypher in a few places, so
// they must only ever come from these constants or the whitelists below.
const (
	LabelUser    = "User"
	LabelProfile = "Profile"
	LabelPaid    = "Paid"
	LabelGenre   = "Genre"
	LabelPoll    = "Poll"
	LabelPost    = "Post"
	LabelReview  = "Review"
	LabelComment = "Comment"
	LabelDeleted = "Deleted"
)

// Relationship names.
const (
	RelCreate       = "CREATE"
	RelContentIn    = "CONTENT_IN"
	RelFollow       = "FOLLOW"
	RelSubscribe    = "SUBSCRIBE"
	RelInterestedIn = "INTERESTED_IN"
	RelLike         = "LIKE"
	RelDislike      = "DISLIKE"
	RelUncertain    = "UNCERTAIN"
	RelRightLike    = "RIGHT_LIKE"
	RelLeftLike     = "LEFT_LIKE"
	RelUpVote       = "UP_VOTE"
	RelDownVote     = "DOWN_VOTE"
	RelInGenre      = "IN_GENRE"
	RelRelatedTo    = "RELATED_TO"
	RelRepost       = "REPOST"
	RelTaggedIn     = "TAGGED_IN"
)

// RelationSpec describes one user-issued relationship: the graph relation
// name and the label of the target node.
type RelationSpec struct {
	Name   string
	Target string
}

// RelationAliases maps the wire-level relation aliases accepted by the
// relation endpoints to their graph wiring. The source node is always a User.
var RelationAliases = map[string]RelationSpec{
	"follow":           {Name: RelFollow, Target: LabelUser},
	"subscribe":        {Name: RelSubscribe, Target: LabelUser},
	"like":             {Name: RelLike, Target: LabelPoll},
	"dis_like":         {Name: RelDislike, Target: LabelPoll},
	"un_certain":       {Name: RelUncertain, Target: LabelPoll},
	"right_like":       {Name: RelRightLike, Target: LabelPoll},
	"left_like":        {Name: RelLeftLike, Target: LabelPoll},
	"post_up_vote":     {Name: RelUpVote, Target: LabelPost},
	"post_down_vote":   {Name: RelDownVote, Target: LabelPost},
	"review_up_vote":   {Name: RelUpVote, Target: LabelReview},
	"review_down_vote": {Name: RelDownVote, Target: LabelReview},
}

// softDeletable lists the labels the soft-delete endpoint may operate on.
var softDeletable = map[string]bool{
	LabelPoll:    true,
	LabelPost:    true,
	LabelReview:  true,
	LabelComment: true,
}

// SoftDeletable reports whether entity is a label the soft-delete
// operation accepts. Anything else must never reach query interpolation.
func SoftDeletable(entity string) bool {
	return softDeletable[entity]
}

// commentTargets lists the labels a comment may attach to.
var commentTargets = map[string]bool{
	LabelPoll:    true,
	LabelPost:    true,
	LabelComment: true,
}

// CommentTarget reports whether entity can carry comments.
func CommentTarget(entity string) bool {
	return commentTargets[entity]
}

// tagTargets lists the labels users may be tagged in.
var tagTargets = map[string]bool{
	LabelPoll:   true,
	LabelPost:   true,
	LabelReview: true,
}

// TagTarget reports whether entity supports user tagging.
func TagTarget(entity string) bool {
	return tagTargets[entity]
}

// voteCountEntities lists the labels with UP_VOTE/DOWN_VOTE counters.
var voteCountEntities = map[string]bool{
	LabelPost:   true,
	LabelReview: true,
}

// VoteCountEntity reports whether entity has up/down vote counts.
func VoteCountEntity(entity string) bool {
	return voteCountEntities[entity]
}
