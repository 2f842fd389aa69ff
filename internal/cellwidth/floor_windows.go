package cellwidth

// MinCell is the narrowest cell the console renders.
const MinCell = 1
