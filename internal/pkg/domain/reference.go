package domain

import (
	"context"
	"strings"
)

// DatasetRef points at a dataset either by identifier or by an already
// retrieved record. Only ById references need a fetch to be resolved.
type DatasetRef struct {
	id     string
	record *DatasetRecord
}

func ByID(id string) DatasetRef {
	return DatasetRef{id: strings.TrimSpace(id)}
}

func ByRecord(record *DatasetRecord) DatasetRef {
	return DatasetRef{record: record}
}

func (ref DatasetRef) ID() string {
	if ref.record != nil {
		return ref.record.ID()
	}
	return ref.id
}

func (ref DatasetRef) IsRecord() bool {
	return ref.record != nil
}

type FetchFunc func(ctx context.Context, id string) (*DatasetRecord, error)

func (ref DatasetRef) Resolve(ctx context.Context, fetch FetchFunc) (*DatasetRecord, error) {
	if ref.record != nil {
		return ref.record, nil
	}

	if ref.id == "" {
		return nil, NewValidationError("id", "dataset reference is empty")
	}

	return fetch(ctx, ref.id)
}
