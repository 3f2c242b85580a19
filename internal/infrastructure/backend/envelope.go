package backend

import (
	"bytes"
	"encoding/json"

	"lotes_backoffice/internal/domain/entities"
)

// Most list endpoints answer {items, meta}; a few older ones answer {data, meta}
// and some catalog endpoints a bare array. All of them become an entities.Page here.
type listEnvelope[T any] struct {
	Items []T                `json:"items"`
	Data  json.RawMessage    `json:"data"`
	Meta  *entities.PageMeta `json:"meta"`
}

func decodePage[T any](body []byte) (entities.Page[T], error) {
	body = bytes.TrimSpace(body)
	if len(body) > 0 && body[0] == '[' {
		var items []T
		if err := json.Unmarshal(body, &items); err != nil {
			return entities.Page[T]{}, err
		}
		return wholePage(items), nil
	}

	var env listEnvelope[T]
	if err := json.Unmarshal(body, &env); err != nil {
		return entities.Page[T]{}, err
	}

	items := env.Items
	if items == nil && len(env.Data) > 0 && !bytes.Equal(env.Data, []byte("null")) {
		data := bytes.TrimSpace(env.Data)
		if data[0] == '[' {
			if err := json.Unmarshal(data, &items); err != nil {
				return entities.Page[T]{}, err
			}
		} else {
			// {data: {items, meta}}
			return decodePage[T](data)
		}
	}
	if items == nil {
		items = []T{}
	}
	if env.Meta == nil {
		return wholePage(items), nil
	}
	return entities.Page[T]{Items: items, Meta: *env.Meta}, nil
}

func wholePage[T any](items []T) entities.Page[T] {
	if items == nil {
		items = []T{}
	}
	return entities.Page[T]{
		Items: items,
		Meta: entities.PageMeta{
			TotalItems:   len(items),
			ItemCount:    len(items),
			ItemsPerPage: len(items),
			TotalPages:   1,
			CurrentPage:  1,
		},
	}
}
