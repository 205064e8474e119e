// Package semantic reclassifies a layout-annotated tree into the semantic
// IR consumed by code generation. Every node becomes exactly one variant of
// a closed union: Container, Text, Image, Icon, Button, Card, Repeater, or
// Component. Classification is a first-match-wins cascade over node type,
// child shape, and content; Container is the fallback when nothing more
// specific applies.
package semantic
