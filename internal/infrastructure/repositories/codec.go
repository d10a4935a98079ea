package repositories

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/irsath0710/clazzy-outfit-advisor/internal/domain/entities"
)

func encodeSelection(selection entities.OutfitSelection) ([]byte, error) {
	data, err := json.Marshal(selection.Snapshot())
	if err != nil {
		return nil, fmt.Errorf("marshal selection: %w", err)
	}
	return data, nil
}

func decodeSelection(data []byte) (entities.OutfitSelection, error) {
	var snapshot entities.SelectionSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return entities.OutfitSelection{}, fmt.Errorf("unmarshal selection: %w", err)
	}
	return entities.RestoreSelection(snapshot), nil
}
