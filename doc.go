// Package homehive provides the data core of a small, local-first
// property-management record keeper for landlords. It tracks rental
// properties, their tenants, rent payments and expenses, and keeps every past
// fiscal year as an isolated, immutable snapshot separate from the live
// record.
//
// The core functionalities include:
//   - Property Registry: the list of live properties, the only place where
//     reference data (name, address, contacts, mortgage, insurance) is edited.
//   - Year Partitions: a per-property, per-calendar-year bundle of tenants,
//     payments, expenses and notes. The current year is freely editable; once
//     a year is in the past its payments are sealed.
//   - Temporal Records: generic year (or year-month) scoped snapshots that
//     freeze on first write and reject any overwrite.
//   - Historical Isolation: year-scoped editors for inventory, tasks and
//     payments that write to their own storage namespaces and can never touch
//     the live property record or any other year.
//   - Rollover Migration: the once-per-year transition that deep-copies every
//     live property into the historical snapshot list.
//   - Projection: a read-only Property-shaped view merging base reference
//     fields with one year's time-varying data.
//
// All state is persisted through an injected key-value [Storage], so the
// whole package works identically over an in-memory fake (tests) or a data
// directory on disk. This package serves as the foundational logic for the
// `hhc` command-line tool.
package homehive
