// Package xcconfig parses, resolves, and serializes Xcode build
// configuration (.xcconfig) files. A file holds string-valued build
// settings and may include other files; the include graph flattens into a
// single effective settings mapping where a file's own settings win over
// anything inherited, and earlier-listed includes win over later ones.
//
// Filesystem access goes through the fsutil.FileSystem collaborator, so the
// package works unchanged against the real filesystem or an in-memory one.
package xcconfig
