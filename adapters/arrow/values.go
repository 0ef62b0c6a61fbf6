// Copyright 2025 Magnus Pierre
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package arrow

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
)

// Value returns the Go value at pos, keeping numeric and boolean types so
// that type formatters can work on them. Dates and timestamps are returned
// as text.
func Value(col arrow.Array, pos int) interface{} {
	if col.IsNull(pos) {
		return nil
	}

	switch col.DataType().ID() {
	case arrow.STRING:
		return col.(*array.String).Value(pos)

	case arrow.LARGE_STRING:
		return col.(*array.LargeString).Value(pos)

	case arrow.BINARY:
		return string(col.(*array.Binary).Value(pos))

	case arrow.BOOL:
		return col.(*array.Boolean).Value(pos)

	case arrow.INT8:
		return col.(*array.Int8).Value(pos)

	case arrow.INT16:
		return col.(*array.Int16).Value(pos)

	case arrow.INT32:
		return col.(*array.Int32).Value(pos)

	case arrow.INT64:
		return col.(*array.Int64).Value(pos)

	case arrow.UINT8:
		return col.(*array.Uint8).Value(pos)

	case arrow.UINT16:
		return col.(*array.Uint16).Value(pos)

	case arrow.UINT32:
		return col.(*array.Uint32).Value(pos)

	case arrow.UINT64:
		return col.(*array.Uint64).Value(pos)

	case arrow.FLOAT16:
		return col.(*array.Float16).Value(pos).Float32()

	case arrow.FLOAT32:
		return col.(*array.Float32).Value(pos)

	case arrow.FLOAT64:
		return col.(*array.Float64).Value(pos)

	case arrow.DATE32:
		return col.(*array.Date32).Value(pos).ToTime().Format("2006-01-02")

	case arrow.DATE64:
		return col.(*array.Date64).Value(pos).ToTime().Format("2006-01-02")

	case arrow.TIMESTAMP:
		unit := col.DataType().(*arrow.TimestampType).Unit
		return col.(*array.Timestamp).Value(pos).ToTime(unit).Format("2006-01-02 15:04:05.999999999")

	case arrow.DECIMAL128:
		return col.(*array.Decimal128).Value(pos).BigInt().String()

	case arrow.STRUCT, arrow.LIST, arrow.MAP:
		return col.GetOneForMarshal(pos)

	default:
		return col.ValueStr(pos)
	}
}
