package es

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/elastic/go-elasticsearch/v9"

	"github.com/spicekitchen/backend/internal/config"
	"github.com/spicekitchen/backend/internal/models"
)

func NewClient(cfg *config.Config) (*elasticsearch.Client, error) {
	esCfg := elasticsearch.Config{
		Addresses: []string{cfg.ES_URL},
		Username:  cfg.ES_USER,
		Password:  cfg.ES_PASSWORD,
	}

	client, err := elasticsearch.NewClient(esCfg)
	if err != nil {
		return nil, fmt.Errorf("elasticsearch: cannot create client: %w", err)
	}

	res, err := client.Info()
	if err != nil {
		return nil, fmt.Errorf("elasticsearch: info request failed: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("elasticsearch: %s: %s", res.Status(), body)
	}

	return client, nil
}

// IndexMenuItem mirrors a catalog row into the menu index, keyed by its id.
func IndexMenuItem(ctx context.Context, client *elasticsearch.Client, index string, item models.MenuItem) error {
	data, err := json.Marshal(item)
	if err != nil {
		return err
	}

	res, err := client.Index(
		index,
		strings.NewReader(string(data)),
		client.Index.WithDocumentID(strconv.FormatUint(uint64(item.ID), 10)),
		client.Index.WithContext(ctx),
	)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("elasticsearch: index failed: %s", res.Status())
	}
	return nil
}

func DeleteMenuItem(ctx context.Context, client *elasticsearch.Client, index string, id uint) error {
	res, err := client.Delete(
		index,
		strconv.FormatUint(uint64(id), 10),
		client.Delete.WithContext(ctx),
	)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	// 404 from the index is fine, the row is gone either way
	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("elasticsearch: delete failed: %s", res.Status())
	}
	return nil
}
