// Package xpath implements the restricted path query language used to
// address elements in configuration documents.
//
// A path is a sequence of steps separated by '/'. Each step names a
// tag and may carry equality predicates on child text:
//
//	Files/Config[ConfigType = 'FILE' and Name = Model]/Source
//
// One or two leading slashes anchor the search at the document root;
// without a leading slash the path matches anywhere in the tree.
//
// This is deliberately not XPath: there are no axes beyond
// child/descendant, no functions, no namespaces, and predicates join
// only with the literal token "and".
package xpath
