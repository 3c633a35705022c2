// Package sumstats reads GWAS summary statistics of unknown dialect. It guesses
// which columns hold the chromosome, position, alleles and p-value, and turns
// each line into an AssociationRecord. Nothing in this package performs I/O;
// see the sumfile package for reading files.
package sumstats
