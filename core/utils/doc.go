// Package utils provides small numeric helpers shared by the decoders.
// Tag trees and loosely typed JSON tables carry numbers of many widths;
// these helpers flatten them to int without per-call type switches.
package utils
