// Package terminal owns the tcell screen: setup, teardown, color capability and crash recovery.
//
// The game loop reads events through Terminal.PollEvent and draws through Terminal.Screen;
// EmergencyReset restores a usable shell when the process dies before Fini runs.
package terminal
