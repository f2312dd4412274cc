package visuals

import (
	"fmt"

	"github.com/campaignforge/server/internal/db"
	"github.com/campaignforge/server/internal/models"
	"github.com/campaignforge/server/internal/storage"
	"github.com/google/uuid"
)

var extensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"video/mp4":  ".mp4",
}

// saveAsset mirrors the bytes to both storage providers and persists the
// campaign_assets row.
func saveAsset(campaignID uint, assetType, provider string, data []byte, contentType string) (*models.CampaignAsset, error) {
	key := fmt.Sprintf("campaigns/%d/%s/%s%s", campaignID, assetType, uuid.NewString(), extensions[contentType])

	result, err := storage.Get().Upload(key, data, contentType)
	if err != nil {
		return nil, err
	}

	asset := &models.CampaignAsset{
		CampaignID:     campaignID,
		AssetType:      assetType,
		ObjectKey:      key,
		ContentType:    contentType,
		PrimaryURL:     result.PrimaryURL,
		BackupURL:      result.BackupURL,
		PrimaryHealthy: result.PrimaryOK,
		Provider:       provider,
		SizeBytes:      int64(len(data)),
	}
	if err := db.GetDB().Create(asset).Error; err != nil {
		return nil, err
	}

	return asset, nil
}
