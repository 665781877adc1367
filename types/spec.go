/*
 * Copyright 2025 Olake By Datazip
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package types

// MatchSpec maps a column to the substrings accepted in it.
// A row matches when every column contains at least one of its substrings.
type MatchSpec map[ColumnRef][]string

// TransformSpec maps a column to the transform operations applied to it, in order.
// Iteration order across columns is not guaranteed.
type TransformSpec map[ColumnRef][]string

type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

// SortSpec selects the sort column and direction
type SortSpec struct {
	Column ColumnRef
	Order  SortOrder
}
