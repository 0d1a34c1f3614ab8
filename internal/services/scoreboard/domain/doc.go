// Package domain holds the scoreboard state model and its reducer.
//
// Four fixed quarters of the playmat map onto two teams. Every change to the
// score goes through Reduce, which is pure: it takes a State and an Action and
// returns the next State without touching anything else. Lifecycle concerns
// (loading, persisting, notifying views) live in the engine package.
package domain
