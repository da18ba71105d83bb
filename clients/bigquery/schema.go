package bigquery

import (
	"fmt"

	"cloud.google.com/go/bigquery"

	"github.com/artie-labs/ingest/lib/tsv"
	"github.com/artie-labs/ingest/lib/typing"
)

func kindToFieldType(kd typing.KindDetails) (bigquery.FieldType, error) {
	switch kd.Kind {
	case typing.Integer.Kind:
		return bigquery.IntegerFieldType, nil
	case typing.Float.Kind:
		return bigquery.FloatFieldType, nil
	case typing.Boolean.Kind:
		return bigquery.BooleanFieldType, nil
	case typing.String.Kind:
		return bigquery.StringFieldType, nil
	default:
		return "", fmt.Errorf("unsupported kind: %q", kd.Kind)
	}
}

// buildSchema infers a nullable column per header entry, in header order.
func buildSchema(rows *tsv.RowSet) (bigquery.Schema, error) {
	schema := make(bigquery.Schema, len(rows.Header))
	for idx, name := range rows.Header {
		fieldType, err := kindToFieldType(typing.InferKind(rows.Column(idx)))
		if err != nil {
			return nil, fmt.Errorf("failed to infer type for column %q: %w", name, err)
		}

		schema[idx] = &bigquery.FieldSchema{Name: name, Type: fieldType}
	}

	return schema, nil
}
