package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/stwalsh4118/cadastre/internal/models"
	"github.com/stwalsh4118/cadastre/internal/registry"
)

func TestExpandRegions_DepthZero(t *testing.T) {
	transport := new(MockTransport)
	service := newTestService(transport)

	branches, err := ExpandRegions(context.Background(), service, []models.Region{{ID: "1", Name: "A"}}, 0, 2)

	require.NoError(t, err)
	require.Len(t, branches, 1)
	assert.Empty(t, branches[0].Children)
	transport.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestExpandRegions_TwoLevels(t *testing.T) {
	// Arrange
	transport := new(MockTransport)
	service := newTestService(transport)
	transport.On("Get", mock.Anything, testBaseURL+"/regions/1").
		Return([]byte(`[{"id":"11","name":"A1"},{"id":"12","name":"A2"}]`), nil)
	transport.On("Get", mock.Anything, testBaseURL+"/regions/2").
		Return([]byte(`[]`), nil)
	transport.On("Get", mock.Anything, testBaseURL+"/regions/11").
		Return([]byte(`[{"id":"111","name":"A1a"}]`), nil)
	transport.On("Get", mock.Anything, testBaseURL+"/regions/12").
		Return([]byte(``), nil)

	roots := []models.Region{{ID: "1", Name: "A"}, {ID: "2", Name: "B"}}

	// Act
	branches, err := ExpandRegions(context.Background(), service, roots, 2, 3)

	// Assert
	require.NoError(t, err)
	require.Len(t, branches, 2)
	require.Len(t, branches[0].Children, 2)
	assert.Equal(t, "A1", branches[0].Children[0].Name)
	require.Len(t, branches[0].Children[0].Children, 1)
	assert.Equal(t, "111", branches[0].Children[0].Children[0].ID)
	assert.Empty(t, branches[0].Children[1].Children)
	assert.Empty(t, branches[1].Children)
	transport.AssertNumberOfCalls(t, "Get", 4)
}

func TestExpandRegions_FailureReturnsNoTree(t *testing.T) {
	transport := new(MockTransport)
	service := newTestService(transport)
	transport.On("Get", mock.Anything, mock.Anything).
		Return(nil, &registry.FetchError{Category: registry.CategoryOutage, Status: 502})

	branches, err := ExpandRegions(context.Background(), service, []models.Region{{ID: "1"}}, 1, 0)

	assert.Nil(t, branches)
	assert.Equal(t, registry.CategoryOutage, registry.CategoryOf(err))
}

func TestExpandRegions_ChildWithoutIDIsLeaf(t *testing.T) {
	// Arrange
	transport := new(MockTransport)
	service := newTestService(transport)
	transport.On("Get", mock.Anything, testBaseURL+"/regions/1").
		Return([]byte(`[{"id":"","name":"Unnamed"},{"id":"12","name":"A2"}]`), nil)
	transport.On("Get", mock.Anything, testBaseURL+"/regions/12").
		Return([]byte(`[]`), nil)

	// Act
	branches, err := ExpandRegions(context.Background(), service, []models.Region{{ID: "1", Name: "A"}}, 2, 2)

	// Assert
	require.NoError(t, err)
	require.Len(t, branches, 1)
	require.Len(t, branches[0].Children, 2)
	assert.Equal(t, "Unnamed", branches[0].Children[0].Name)
	assert.Nil(t, branches[0].Children[0].Children)
	transport.AssertNumberOfCalls(t, "Get", 2)
	transport.AssertNotCalled(t, "Get", mock.Anything, testBaseURL+"/regions/")
}
