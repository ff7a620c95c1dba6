// Package view contiene las proyecciones derivadas (orden, particion,
// filtro) que cada pagina aplica a una coleccion ya cargada.
//
// Todas las funciones son puras: nunca modifican la entrada y siempre
// devuelven un slice nuevo, vacio si la entrada esta vacia.
package view
