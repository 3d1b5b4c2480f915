package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripkit/tripkit-backend/utils"
)

func TestCreateList_RequiresTitle(t *testing.T) {
	service := NewPlaceService()

	_, err := service.CreateList("t1", "   ")
	require.Error(t, err)
	appErr, ok := err.(*utils.AppError)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.Code)
}
