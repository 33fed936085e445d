// Copyright (c) 2025-2026 Omid Shadfar
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package model defines the inner most layer of the Clean Architecture
// containing the business-level models, also called entities or domain.
// This layer may not depend on outter layers, while all other layers
// may depend on it.
// By the way, it is acceptable to annotate structs in this package with
// multiple frameworks dependent tags (e.g., as required by ORM or JSON
// serialization libraries) since adding more tags does not complicate
// definition of a struct, but can prevent unnecessary structs
// duplication.
package model

import "github.com/google/uuid"

// Details holds the structural and descriptive attributes of a
// vehicle. The orchestration layer copies it as a unit and never
// inspects individual fields.
type Details struct {
	Make  string `json:"make"`  // manufacturer name
	Model string `json:"model"` // model name, as named by the maker
	Year  int    `json:"year"`  // model year
}

// Vehicle models a vehicle record which may be persisted in a
// database. The ID field is assigned by the vehicles repository upon
// the first creation and is immutable thereafter; a not-yet-persisted
// instance carries the zero UUID. This struct intentionally has no
// price or address fields; those are derived, transient view-state
// and belong to the VehicleView struct, so the persisted/derived
// distinction is enforced at the type level instead of by convention.
type Vehicle struct {
	ID         uuid.UUID  `json:"id"`        // repository-assigned identifier
	Details    Details    `json:"details"`   // descriptive attributes
	Condition  Condition  `json:"condition"` // new/used condition
	Coordinate Coordinate `json:"location"`  // raw location descriptor
}

// VehicleView is the read-time view of a Vehicle, composed by the
// vehicles use case from the persisted record and the two remote
// lookup results. A nil Price or Address indicates that the
// corresponding lookup did not succeed for this read; the embedded
// Vehicle fields are always authoritative.
type VehicleView struct {
	Vehicle

	Price   *Price  `json:"price,omitempty"`   // current quote, if resolved
	Address *string `json:"address,omitempty"` // resolved display address
}
