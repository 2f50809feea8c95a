// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the sync application runtime.
//
// It wires the declared-secrets parser, the reconciliation services and
// the plan-review UI into a single process lifecycle: parse, plan,
// review, apply, report.
package client
