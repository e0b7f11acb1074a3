package assetgroups

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/google-marketing-solutions/madpmax-sub000/core/sheets"
)

func assetRow(assetType, text, url string) sheets.Row {
	// status, delete, customer, campaign, group, type, text, cta, url,
	// thumbnail, error, resource
	return sheets.Row{
		"", "", "Acme", "Summer Sale", "Shoes",
		assetType, text, "", url, "", "", "",
	}
}

func groupRow() sheets.Row {
	// alias, campaign-alias, status, asset-check, name, final-url,
	// mobile-url, path1, path2, campaign-status, message
	return sheets.Row{
		"Acme;Summer Sale;Shoes", "Acme;Summer Sale", "", "TRUE",
		"Shoes", "https://acme.test/shoes", "", "", "", "", "",
	}
}

func TestDecodeAssetRow(t *testing.T) {
	t.Run("Valid Row", func(t *testing.T) {
		rec, err := decodeAssetRow(assetRow("HEADLINE", "Buy shoes", ""), 4)
		require.NoError(t, err)
		require.NotNil(t, rec)

		assert.Equal(t, 4, rec.row)
		assert.Equal(t, "HEADLINE", rec.assetType)
		assert.Equal(t, "Buy shoes", rec.text)
		assert.Equal(t, "Acme;Summer Sale;Shoes", rec.alias())
		assert.False(t, rec.deleteFlag)
	})

	t.Run("Uploaded Row Is Skipped", func(t *testing.T) {
		row := assetRow("HEADLINE", "Buy shoes", "")
		row[assetColStatus] = "UPLOADED"

		rec, err := decodeAssetRow(row, 0)
		assert.NoError(t, err)
		assert.Nil(t, rec)
	})

	t.Run("Uploaded Row With Delete Flag Is Processed", func(t *testing.T) {
		row := assetRow("HEADLINE", "Buy shoes", "")
		row[assetColStatus] = "UPLOADED"
		row[assetColDelete] = "TRUE"
		row[assetColResource] = "customers/123/assetGroupAssets/7~8~HEADLINE"

		rec, err := decodeAssetRow(row, 0)
		require.NoError(t, err)
		require.NotNil(t, rec)
		assert.True(t, rec.deleteFlag)
		assert.Equal(t, "customers/123/assetGroupAssets/7~8~HEADLINE", rec.resource)
	})

	t.Run("Delete Flag Requires Recorded Resource", func(t *testing.T) {
		row := assetRow("HEADLINE", "Buy shoes", "")
		row[assetColDelete] = "TRUE"

		_, err := decodeAssetRow(row, 0)
		assert.ErrorContains(t, err, "resource")
	})

	t.Run("Missing Group Name", func(t *testing.T) {
		row := assetRow("HEADLINE", "Buy shoes", "")
		row[assetColGroupName] = ""

		_, err := decodeAssetRow(row, 0)
		assert.ErrorContains(t, err, "asset group name")
	})

	t.Run("Missing Asset Type", func(t *testing.T) {
		_, err := decodeAssetRow(assetRow("", "Buy shoes", ""), 0)
		assert.ErrorContains(t, err, "asset type")
	})
}

func TestDecodeGroupRow(t *testing.T) {
	t.Run("Valid Row", func(t *testing.T) {
		rec, err := decodeGroupRow(groupRow(), 1)
		require.NoError(t, err)
		require.NotNil(t, rec)

		assert.Equal(t, "Acme;Summer Sale;Shoes", rec.alias)
		assert.Equal(t, "Acme;Summer Sale", rec.campaignAlias)
		assert.True(t, rec.assetCheck)
		assert.Equal(t, defaultGroupStatus, rec.status)
	})

	t.Run("Uploaded Row Is Skipped", func(t *testing.T) {
		row := groupRow()
		row[groupColStatus] = "UPLOADED"

		rec, err := decodeGroupRow(row, 0)
		assert.NoError(t, err)
		assert.Nil(t, rec)
	})

	t.Run("Asset Check Not Confirmed", func(t *testing.T) {
		row := groupRow()
		row[groupColAssetCheck] = "FALSE"

		rec, err := decodeGroupRow(row, 0)
		require.NoError(t, err)
		assert.False(t, rec.assetCheck)
	})

	t.Run("Missing Final URL", func(t *testing.T) {
		row := groupRow()
		row[groupColFinalURL] = ""

		_, err := decodeGroupRow(row, 0)
		assert.ErrorContains(t, err, "final url")
	})
}
