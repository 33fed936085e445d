// Copyright (c) 2025-2026 Omid Shadfar
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package vehiclesuc

import (
	"errors"
	"fmt"
	"time"
)

// Option is a functional option for the vehicles use case.
type Option func(uc *UseCase) error

// WithLookupTimeout option configures a vehicles UseCase instance to
// bound each price or address lookup call with the given timeout.
// A call which exceeds it is reported as unavailable instead of
// blocking the read indefinitely. This option may be passed to the
// New() function.
func WithLookupTimeout(timeout time.Duration) Option {
	return func(uc *UseCase) error {
		if d := int64(timeout); d <= 0 {
			return fmt.Errorf("timeout (%d) is not positive", d)
		}
		if uc.lookupTimeout != 0 {
			return errors.New("lookup timeout is already configured")
		}
		uc.lookupTimeout = timeout
		return nil
	}
}

// WithListConcurrency option configures how many records the List use
// case may enrich concurrently. This option may be passed to the
// New() function.
func WithListConcurrency(n int) Option {
	return func(uc *UseCase) error {
		if n <= 0 {
			return fmt.Errorf("concurrency (%d) is not positive", n)
		}
		if uc.listConcurrency != 0 {
			return errors.New("concurrency is already configured")
		}
		uc.listConcurrency = n
		return nil
	}
}
