package ir

// NameTag is the tag of the child element conventionally carrying an
// element's name, used by the name index and by anchored insertion.
const NameTag = "Name"
