// Package address implements deterministic, collision-free derivation
// of storage addresses. Each derived entity (slot, reservation,
// experience) lives at an address computed from a namespace, its
// parent's key, and a disambiguator, so uniqueness within a namespace
// comes for free from the database primary key instead of a separate
// index.
package address

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
)

const (
	NamespaceExperience  = "experience"
	NamespaceSlot        = "slot"
	NamespaceReservation = "reservation"
)

// Derive maps (namespace, parent, disambiguator) to a unique address.
// It is a pure function: identical inputs always produce the same
// address, and SHA-256 makes accidental collisions across distinct
// inputs implausible.
func Derive(namespace string, parent string, disambiguator []byte) string {
	h := sha256.New()
	h.Write([]byte(namespace))
	h.Write([]byte{0})
	h.Write([]byte(parent))
	h.Write([]byte{0})
	h.Write(disambiguator)
	return hex.EncodeToString(h.Sum(nil))
}

// ForExperience derives the address of an experience from its
// organiser and title.
func ForExperience(organiser, title string) string {
	return Derive(NamespaceExperience, organiser, []byte(title))
}

// ForSlot derives the address of a time slot from its experience and
// start time. One address per (experience, start_time) pair means at
// most one slot can ever exist for it.
func ForSlot(experience string, startTime int64) string {
	return Derive(NamespaceSlot, experience, epochBytes(startTime))
}

// ForReservation derives the address of a reservation from its
// experience and the booked slot's start time.
func ForReservation(experience string, startTime int64) string {
	return Derive(NamespaceReservation, experience, epochBytes(startTime))
}

func epochBytes(ts int64) []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(ts))
	return b[:]
}
