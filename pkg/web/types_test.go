package web_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/whalekit/strategist/pkg/web"
)

func TestEditContentRequest_ToPatch(t *testing.T) {
	t.Parallel()

	days := 3
	title := "第三天推送"

	patch := web.EditContentRequest{Days: &days, Title: &title}.ToPatch()

	assert.False(t, patch.IsZero())
	assert.Equal(t, 3, *patch.Days)
	assert.Equal(t, "第三天推送", *patch.Title)
	assert.Nil(t, patch.Content)
	assert.Nil(t, patch.Time)

	assert.True(t, web.EditContentRequest{}.ToPatch().IsZero())
}

func TestUpdateBusinessRequest_ToModel(t *testing.T) {
	t.Parallel()

	partial := web.UpdateBusinessRequest{
		Industry:        "教育培训",
		AdditionalFiles: []string{"brand.pdf"},
	}.ToModel()

	assert.Equal(t, "教育培训", partial.Industry)
	assert.Equal(t, []string{"brand.pdf"}, partial.AdditionalFiles)
	assert.Empty(t, partial.ProductService)

	assert.True(t, web.UpdateBusinessRequest{}.ToModel().IsEmpty())
}
