package persistent

import (
	"testing"
	"time"

	"github.com/andreyxaxa/Social-Submissions/internal/entity"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSubmissionDocFieldNames(t *testing.T) {
	doc := toDoc(&entity.Submission{
		ID:             "ignored",
		Name:           "Ada",
		SocialPlatform: entity.GitHub,
		SocialHandle:   "ada",
		Images:         []string{"/uploads/a.png"},
		CreatedAt:      time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	})

	raw, err := bson.Marshal(doc)
	require.NoError(t, err)

	var m bson.M
	require.NoError(t, bson.Unmarshal(raw, &m))

	// _id is left to the driver on insert
	require.NotContains(t, m, "_id")
	for _, key := range []string{"name", "socialPlatform", "socialHandle", "images", "createdAt"} {
		require.Contains(t, m, key)
	}
}

func TestSubmissionDocToEntity(t *testing.T) {
	oid := primitive.NewObjectID()
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.FixedZone("x", 3600))

	s := submissionDoc{
		ID:             oid,
		Name:           "Ada",
		SocialPlatform: "github",
		SocialHandle:   "ada",
		CreatedAt:      created,
	}.toEntity()

	require.Equal(t, oid.Hex(), s.ID)
	require.Equal(t, entity.GitHub, s.SocialPlatform)
	require.NotNil(t, s.Images)
	require.Empty(t, s.Images)
	require.Equal(t, time.UTC, s.CreatedAt.Location())
	require.True(t, created.Equal(s.CreatedAt))
}
