// Package template contains the customisable notification messages.
//
// Staff can edit the text sent for each reservation and order
// lifecycle event. Rendering is pure string substitution over
// {{placeholder}} tokens; choosing the values belongs to the
// notification composer in the services package.
package template
