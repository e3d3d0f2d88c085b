// Package domain holds the model types, sentinel errors, and interfaces of
// the mood tracking core. It has no dependencies on transport or storage;
// adapters implement its interfaces.
package domain
