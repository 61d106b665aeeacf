// Package domain contains the entities of the parks service: national parks,
// the trails that belong to them and the users allowed to administer them.
// Entities validate themselves; persistence and transport live elsewhere.
package domain
