// Package task defines the to-do record and in-memory operations over the
// ordered collection of records.
//
// The persisted file format (todos.json) is a single top-level JSON array:
//
//	[
//	  {
//	    "id": 1,
//	    "title": "Buy milk",
//	    "priority": "Low",
//	    "category": "Home",
//	    "completed": false
//	  }
//	]
//
// # Identifiers
//
// Ids are positive integers assigned monotonically: the next id is always
// one greater than the maximum id present in the collection.
//
// # Priorities
//
//   - "Low" (default when absent or unrecognized)
//   - "Medium"
//   - "High"
//
// # Ordering
//
// Insertion order is preserved and is the only ordering. All mutation
// helpers operate on the whole collection; callers persist the result in
// full after every change.
package task
