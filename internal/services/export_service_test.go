package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cvlm/crm-backend/internal/export"
	"github.com/cvlm/crm-backend/internal/services"
)

func TestExportCSV(t *testing.T) {
	collection := services.NewCollection(seededStore(), quietLogger())
	collection.Load(context.Background())
	svc := services.NewExportService(collection)

	data, filename, err := svc.ExportCSV(context.Background())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(filename, "cvlm_crm_export_"))
	assert.True(t, strings.HasSuffix(filename, ".csv"))

	rows := strings.Split(string(data), "\n")
	require.Len(t, rows, 2)
	assert.Equal(t, strings.Join(export.Header, ","), rows[0])
	assert.Contains(t, rows[1], "Jean Dupont")
}
