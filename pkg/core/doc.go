// Package core defines the funding configuration domain model.
//
// A Configuration is the root entity built from a parsed funding DSL
// document: project metadata, beneficiaries, funding sources, tiers,
// and goals. Entities are constructed once by a front-end's model
// builder and must be treated as immutable afterwards; producing a
// changed configuration means building a new one.
//
// The package also provides:
//   - Validate: advisory semantic checks returning a deterministic
//     list of findings (never an error, never a mutation)
//   - Accept: visitor traversal in declaration order
//   - Frontend: the contract shared by interchangeable parser
//     front-ends, plus a registry for looking them up by name
package core
