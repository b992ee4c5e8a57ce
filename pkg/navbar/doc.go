// Package navbar renders a responsive navigation bar as an HTML element tree.
//
// A navbar is configured with Props, built from DefaultProps, NewProps, Merge
// or PropsFromOptions. Render maps Props and a dropdown State to a tree of
// *html.Node: logo, horizontal menu with search input and button, menu toggle
// and, only when expanded, a dropdown panel repeating the menu entries.
//
// An Instance owns the State of one mounted navbar. Its toggle control can be
// bound to a server round trip with HTMXBinding; the server restores the
// instance, calls Toggle and answers with RenderContent.
package navbar
