package model

import "strings"

// Profile is an accessibility label selecting which UI and audio
// adaptations apply to a user.
type Profile string

// The fixed set of demo profiles.
const (
	ProfileMemory    Profile = "Memory Impairment"
	ProfileAttention Profile = "ADHD/Impulse"
	ProfileCognitive Profile = "Cognitive/Dyslexia"
	ProfileVisual    Profile = "Visual Impairment"
	ProfileStandard  Profile = "Standard"
	ProfileAdmin     Profile = "Admin"
)

// IsAttentionImpulse reports whether the profile is an attention/impulse
// type, which tightens the late-night high-value rule to a hard stop.
func (p Profile) IsAttentionImpulse() bool {
	s := strings.ToLower(string(p))
	return strings.Contains(s, "adhd") || strings.Contains(s, "impulse")
}

// SuppressesAudio reports whether spoken output should be omitted for
// this profile (hearing-related accommodations).
func (p Profile) SuppressesAudio() bool {
	return strings.Contains(strings.ToLower(string(p)), "hearing")
}
