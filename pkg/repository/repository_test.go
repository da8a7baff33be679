package repository_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CaueSilva/bank-account-api/pkg/domain"
	"github.com/CaueSilva/bank-account-api/pkg/repository"
)

func TestNewListParams(t *testing.T) {
	params, err := repository.NewListParams(2, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, params.Page)
	assert.Equal(t, 10, params.Size)
}

func TestNewListParamsBounds(t *testing.T) {
	tests := []struct {
		name string
		page int
		size int
	}{
		{"zero page", 0, 10},
		{"negative page", -1, 10},
		{"zero size", 1, 0},
		{"negative size", 1, -5},
		{"size above maximum", 1, repository.MaxPageSize + 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repository.NewListParams(tt.page, tt.size)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestNewListParamsAcceptsMaxSize(t *testing.T) {
	params, err := repository.NewListParams(1, repository.MaxPageSize)
	require.NoError(t, err)
	assert.Equal(t, repository.MaxPageSize, params.Size)
}

func TestListParamsOffset(t *testing.T) {
	tests := []struct {
		page   int
		size   int
		offset int
	}{
		{1, 50, 0},
		{2, 50, 50},
		{3, 10, 20},
	}
	for _, tt := range tests {
		params, err := repository.NewListParams(tt.page, tt.size)
		require.NoError(t, err)
		assert.Equal(t, tt.offset, params.Offset())
	}
}
