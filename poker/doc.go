// Package poker extracts five-card hands from a shuffled deck and
// classifies their strength.
//
// # Core Components
//
// Hand: five cards in deal order plus the rank and suit frequency
// tables built while dealing.
//
// Category: the fixed ladder of hand strengths from straight flush
// (1, strongest) down to high card (9, weakest). Classification works
// entirely from the frequency tables.
//
// # Limitations
//
// Two hands of the same category compare as a tie. Kicker comparison
// within a category is deliberately left out.
package poker
