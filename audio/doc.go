// Package audio synthesizes the game's sound cues and plays them through beep's speaker
package audio
