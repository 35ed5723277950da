// Package input maps host key events to engine navigation actions.
package input
