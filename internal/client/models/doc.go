// Package models defines the records persisted by the volunteer client:
// the single Profile, Events, Reports, and the activity Messages that feed
// the cabinet chat.
//
// JSON tags follow the storage layout of the browser version, so an exported
// store can be imported as is.
package models
